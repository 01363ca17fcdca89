package isobmff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/simonhull/mediadissect/internal/textenc"
	"github.com/simonhull/mediadissect/internal/types"
)

// decodeLeaf decodes the payload of a recognized leaf box. Unrecognized
// types and failed decodes return nil; the raw payload is kept either
// way.
func decodeLeaf(boxType string, data []byte) types.BoxContent {
	var content types.BoxContent
	var err error

	switch boxType {
	case "ftyp":
		content, err = decodeFileType(data)
	case "mvhd":
		content, err = decodeMovieHeader(data)
	case "tkhd":
		content, err = decodeTrackHeader(data)
	case "mdhd":
		content, err = decodeMediaHeader(data)
	case "hdlr":
		content, err = decodeHandler(data)
	case "vmhd":
		content, err = decodeVideoMediaHeader(data)
	case "smhd":
		content, err = decodeSoundMediaHeader(data)
	case "nmhd":
		content, err = decodeNullMediaHeader(data)
	case "stsd":
		content, err = decodeSampleDescription(data)
	case "stts":
		content, err = decodeTimeToSample(data)
	case "stsc":
		content, err = decodeSampleToChunk(data)
	case "stsz":
		content, err = decodeSampleSize(data)
	case "stco":
		content, err = decodeChunkOffset(data)
	case "co64":
		content, err = decodeChunkOffset64(data)
	case "elst":
		content, err = decodeEditList(data)
	case "url ":
		content, err = decodeDataEntryURL(data)
	case "urn ":
		content, err = decodeDataEntryURN(data)
	case "chap":
		content, err = decodeChapterList(data)
	case "mean":
		content, err = decodeMetadataMean(data)
	case "name":
		content, err = decodeMetadataName(data)
	default:
		return nil
	}

	if err != nil {
		return nil
	}
	return content
}

func decodeFileType(data []byte) (*types.FileTypeBox, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("ftyp box too short")
	}

	ft := &types.FileTypeBox{
		MajorBrand:   textenc.LossyUTF8(data[0:4]),
		MinorVersion: binary.BigEndian.Uint32(data[4:8]),
	}
	for off := 8; off+4 <= len(data); off += 4 {
		ft.CompatibleBrands = append(ft.CompatibleBrands, textenc.LossyUTF8(data[off:off+4]))
	}
	return ft, nil
}

func decodeMovieHeader(data []byte) (*types.MovieHeaderBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("mvhd box too short")
	}

	mh := &types.MovieHeaderBox{Version: data[0]}

	var rateOffset int
	if mh.Version == 1 {
		if len(data) < 36 {
			return nil, fmt.Errorf("mvhd version 1 box too short")
		}
		mh.CreationTime = binary.BigEndian.Uint64(data[4:12])
		mh.ModificationTime = binary.BigEndian.Uint64(data[12:20])
		mh.Timescale = binary.BigEndian.Uint32(data[20:24])
		mh.Duration = binary.BigEndian.Uint64(data[24:32])
		rateOffset = 32
	} else {
		if len(data) < 24 {
			return nil, fmt.Errorf("mvhd version 0 box too short")
		}
		mh.CreationTime = uint64(binary.BigEndian.Uint32(data[4:8]))
		mh.ModificationTime = uint64(binary.BigEndian.Uint32(data[8:12]))
		mh.Timescale = binary.BigEndian.Uint32(data[12:16])
		mh.Duration = uint64(binary.BigEndian.Uint32(data[16:20]))
		rateOffset = 20
	}

	if len(data) < rateOffset+8 {
		return nil, fmt.Errorf("mvhd box too short for rate and volume")
	}
	mh.Rate = fixed1616(data[rateOffset : rateOffset+4])
	mh.Volume = fixed88(data[rateOffset+4 : rateOffset+6])

	return mh, nil
}

func decodeTrackHeader(data []byte) (*types.TrackHeaderBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("tkhd box too short")
	}

	th := &types.TrackHeaderBox{
		Version: data[0],
		Flags:   uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3]),
	}

	var base int
	if th.Version == 1 {
		if len(data) < 40 {
			return nil, fmt.Errorf("tkhd version 1 box too short")
		}
		th.CreationTime = binary.BigEndian.Uint64(data[4:12])
		th.ModificationTime = binary.BigEndian.Uint64(data[12:20])
		th.TrackID = binary.BigEndian.Uint32(data[20:24])
		th.Duration = binary.BigEndian.Uint64(data[28:36])
		base = 36
	} else {
		if len(data) < 28 {
			return nil, fmt.Errorf("tkhd version 0 box too short")
		}
		th.CreationTime = uint64(binary.BigEndian.Uint32(data[4:8]))
		th.ModificationTime = uint64(binary.BigEndian.Uint32(data[8:12]))
		th.TrackID = binary.BigEndian.Uint32(data[12:16])
		th.Duration = uint64(binary.BigEndian.Uint32(data[20:24]))
		base = 24
	}

	// Width and height sit after two reserved runs, the layer group,
	// and the 36 byte transformation matrix.
	if len(data) < base+60 {
		return nil, fmt.Errorf("tkhd box too short for additional fields")
	}
	th.Layer = int16(binary.BigEndian.Uint16(data[base+8 : base+10]))
	th.AlternateGroup = int16(binary.BigEndian.Uint16(data[base+10 : base+12]))
	th.Volume = fixed88(data[base+12 : base+14])
	th.Matrix = append([]byte(nil), data[base+16:base+52]...)
	th.Width = ufixed1616(data[base+52 : base+56])
	th.Height = ufixed1616(data[base+56 : base+60])

	return th, nil
}

func decodeMediaHeader(data []byte) (*types.MediaHeaderBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("mdhd box too short")
	}

	mh := &types.MediaHeaderBox{Version: data[0]}

	var langOffset int
	if mh.Version == 1 {
		if len(data) < 36 {
			return nil, fmt.Errorf("mdhd version 1 box too short")
		}
		mh.CreationTime = binary.BigEndian.Uint64(data[4:12])
		mh.ModificationTime = binary.BigEndian.Uint64(data[12:20])
		mh.Timescale = binary.BigEndian.Uint32(data[20:24])
		mh.Duration = binary.BigEndian.Uint64(data[24:32])
		langOffset = 32
	} else {
		if len(data) < 24 {
			return nil, fmt.Errorf("mdhd version 0 box too short")
		}
		mh.CreationTime = uint64(binary.BigEndian.Uint32(data[4:8]))
		mh.ModificationTime = uint64(binary.BigEndian.Uint32(data[8:12]))
		mh.Timescale = binary.BigEndian.Uint32(data[12:16])
		mh.Duration = uint64(binary.BigEndian.Uint32(data[16:20]))
		langOffset = 20
	}

	if len(data) < langOffset+2 {
		return nil, fmt.Errorf("mdhd box too short for language")
	}
	// ISO 639-2/T code packed as three 5 bit letters offset from 0x60.
	code := binary.BigEndian.Uint16(data[langOffset : langOffset+2])
	mh.Language = string([]byte{
		byte(code>>10&0x1F) + 0x60,
		byte(code>>5&0x1F) + 0x60,
		byte(code&0x1F) + 0x60,
	})

	return mh, nil
}

func decodeHandler(data []byte) (*types.HandlerBox, error) {
	if len(data) < 24 {
		return nil, fmt.Errorf("hdlr box too short")
	}

	h := &types.HandlerBox{
		Version:     data[0],
		HandlerType: textenc.LossyUTF8(data[8:12]),
		// The first reserved word often carries a manufacturer code.
		Manufacturer: strings.TrimRight(textenc.LossyUTF8(data[12:16]), "\x00"),
	}
	if len(data) > 24 {
		h.Name = strings.TrimRight(textenc.LossyUTF8(data[24:]), "\x00")
	}
	return h, nil
}

func decodeVideoMediaHeader(data []byte) (*types.VideoMediaHeaderBox, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("vmhd box too short")
	}
	return &types.VideoMediaHeaderBox{
		GraphicsMode: binary.BigEndian.Uint16(data[4:6]),
		OpColor: [3]uint16{
			binary.BigEndian.Uint16(data[6:8]),
			binary.BigEndian.Uint16(data[8:10]),
			binary.BigEndian.Uint16(data[10:12]),
		},
	}, nil
}

func decodeSoundMediaHeader(data []byte) (*types.SoundMediaHeaderBox, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("smhd box too short")
	}
	return &types.SoundMediaHeaderBox{Balance: fixed88(data[4:6])}, nil
}

func decodeNullMediaHeader(data []byte) (*types.NullMediaHeaderBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("nmhd box too short")
	}
	return &types.NullMediaHeaderBox{Version: data[0]}, nil
}

func decodeDataReference(data []byte) (*types.DataReferenceBox, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("dref box too short")
	}
	return &types.DataReferenceBox{
		Version:    data[0],
		EntryCount: binary.BigEndian.Uint32(data[4:8]),
	}, nil
}

func decodeDataEntryURL(data []byte) (*types.DataEntryURLBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("url box too short")
	}

	u := &types.DataEntryURLBox{
		Version: data[0],
		Flags:   uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3]),
	}
	switch {
	case u.SelfContained():
		u.Location = "(data in same file)"
	case len(data) > 4:
		u.Location = strings.TrimRight(textenc.LossyUTF8(data[4:]), "\x00")
	}
	return u, nil
}

func decodeDataEntryURN(data []byte) (*types.DataEntryURNBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("urn box too short")
	}

	u := &types.DataEntryURNBox{
		Version: data[0],
		Flags:   uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3]),
	}
	payload := data[4:]
	if i := bytes.IndexByte(payload, 0); i >= 0 {
		u.Name = textenc.LossyUTF8(payload[:i])
		if i+1 < len(payload) {
			u.Location = strings.TrimRight(textenc.LossyUTF8(payload[i+1:]), "\x00")
		}
	}
	return u, nil
}

func decodeSampleDescription(data []byte) (*types.SampleDescriptionBox, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("stsd box too short")
	}

	sd := &types.SampleDescriptionBox{
		Version:    data[0],
		EntryCount: binary.BigEndian.Uint32(data[4:8]),
	}

	// Entry extraction is best effort: a short or zero sized entry
	// ends the list with whatever parsed before it.
	offset := 8
	for i := uint32(0); i < sd.EntryCount; i++ {
		if offset+8 > len(data) {
			break
		}
		entrySize := binary.BigEndian.Uint32(data[offset : offset+4])
		sd.Entries = append(sd.Entries, types.SampleEntry{
			Size:   entrySize,
			Format: textenc.LossyUTF8(data[offset+4 : offset+8]),
		})
		if entrySize == 0 {
			break
		}
		offset += int(entrySize)
		if offset >= len(data) {
			break
		}
	}

	return sd, nil
}

func decodeTimeToSample(data []byte) (*types.TimeToSampleBox, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("stts box too short")
	}
	return &types.TimeToSampleBox{
		Version:    data[0],
		EntryCount: binary.BigEndian.Uint32(data[4:8]),
	}, nil
}

func decodeSampleToChunk(data []byte) (*types.SampleToChunkBox, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("stsc box too short")
	}
	return &types.SampleToChunkBox{
		Version:    data[0],
		EntryCount: binary.BigEndian.Uint32(data[4:8]),
	}, nil
}

func decodeSampleSize(data []byte) (*types.SampleSizeBox, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("stsz box too short")
	}
	return &types.SampleSizeBox{
		Version:     data[0],
		SampleSize:  binary.BigEndian.Uint32(data[4:8]),
		SampleCount: binary.BigEndian.Uint32(data[8:12]),
	}, nil
}

func decodeChunkOffset(data []byte) (*types.ChunkOffsetBox, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("stco box too short")
	}
	return &types.ChunkOffsetBox{
		Version:    data[0],
		EntryCount: binary.BigEndian.Uint32(data[4:8]),
	}, nil
}

func decodeChunkOffset64(data []byte) (*types.ChunkOffset64Box, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("co64 box too short")
	}
	return &types.ChunkOffset64Box{
		Version:    data[0],
		EntryCount: binary.BigEndian.Uint32(data[4:8]),
	}, nil
}

func decodeEditList(data []byte) (*types.EditListBox, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("elst box too short")
	}
	return &types.EditListBox{
		Version:    data[0],
		EntryCount: binary.BigEndian.Uint32(data[4:8]),
	}, nil
}

func decodeChapterList(data []byte) (*types.ChapterListBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("chap box too short")
	}

	cl := &types.ChapterListBox{}
	for off := 0; off+4 <= len(data); off += 4 {
		cl.TrackIDs = append(cl.TrackIDs, binary.BigEndian.Uint32(data[off:off+4]))
	}
	return cl, nil
}

func decodeMetadataMean(data []byte) (*types.MetadataMeanBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("mean box too short")
	}

	m := &types.MetadataMeanBox{Version: data[0]}
	if len(data) > 4 {
		m.Namespace = strings.TrimRight(textenc.LossyUTF8(data[4:]), "\x00")
	}
	return m, nil
}

func decodeMetadataName(data []byte) (*types.MetadataNameBox, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("name box too short")
	}

	n := &types.MetadataNameBox{Version: data[0]}
	if len(data) > 4 {
		n.Name = strings.TrimRight(textenc.LossyUTF8(data[4:]), "\x00")
	}
	return n, nil
}

// fixed1616 converts a signed 16.16 fixed point value.
func fixed1616(b []byte) float64 {
	return float64(int32(binary.BigEndian.Uint32(b))) / 65536.0
}

// ufixed1616 converts an unsigned 16.16 fixed point value.
func ufixed1616(b []byte) float64 {
	return float64(binary.BigEndian.Uint32(b)) / 65536.0
}

// fixed88 converts a signed 8.8 fixed point value.
func fixed88(b []byte) float64 {
	return float64(int16(binary.BigEndian.Uint16(b))) / 256.0
}
