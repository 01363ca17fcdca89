package isobmff

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simonhull/mediadissect/internal/binary"
	"github.com/simonhull/mediadissect/internal/registry"
	"github.com/simonhull/mediadissect/internal/types"
)

// buildBox assembles a box from a type of exactly four bytes and a
// payload. iTunes item names pass the MacRoman sign as "\xA9".
func buildBox(boxType string, payload []byte) []byte {
	size := 8 + len(payload)
	b := []byte{byte(size >> 24), byte(size >> 16), byte(size >> 8), byte(size)}
	b = append(b, boxType...)
	return append(b, payload...)
}

// buildContainer assembles a container box from child boxes.
func buildContainer(boxType string, children ...[]byte) []byte {
	var payload []byte
	for _, c := range children {
		payload = append(payload, c...)
	}
	return buildBox(boxType, payload)
}

// buildDataBox assembles an iTunes data box with the given type tag
// byte and value.
func buildDataBox(typeTag byte, value []byte) []byte {
	payload := []byte{
		0x00,                // version
		0x00, 0x00, typeTag, // type tag
		0x00, 0x00, 0x00, 0x00, // reserved
	}
	return buildBox("data", append(payload, value...))
}

func parseAll(t *testing.T, data []byte, opts registry.Options) []*types.Box {
	t.Helper()
	sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.m4a")
	boxes, err := parseBoxes(sr, 0, int64(len(data)), 0, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return boxes
}

func parsePartial(data []byte) ([]*types.Box, error) {
	sr := binary.NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.m4a")
	return parseBoxes(sr, 0, int64(len(data)), 0, registry.DefaultOptions())
}

func TestParseBoxes_FlatTree(t *testing.T) {
	data := buildBox("ftyp", []byte{
		'M', '4', 'A', ' ', // major brand
		0x00, 0x00, 0x02, 0x00, // minor version
	})
	data = append(data, buildBox("free", make([]byte, 4))...)

	boxes := parseAll(t, data, registry.DefaultOptions())
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(boxes))
	}

	if boxes[0].Type != "ftyp" || boxes[0].Offset != 0 || boxes[0].Size != 16 {
		t.Errorf("unexpected ftyp box: %+v", boxes[0])
	}
	if boxes[1].Type != "free" || boxes[1].Offset != 16 || boxes[1].Size != 12 {
		t.Errorf("unexpected free box: %+v", boxes[1])
	}
	if boxes[0].Container || boxes[1].Container {
		t.Error("leaf boxes marked as containers")
	}
	if boxes[0].HeaderSize != 8 {
		t.Errorf("expected header size 8, got %d", boxes[0].HeaderSize)
	}
}

func TestParseBoxes_NestedContainers(t *testing.T) {
	inner := buildBox("free", make([]byte, 8))
	data := buildContainer("moov", buildContainer("trak", buildContainer("edts", inner)))

	boxes := parseAll(t, data, registry.DefaultOptions())
	if len(boxes) != 1 {
		t.Fatalf("expected 1 top-level box, got %d", len(boxes))
	}

	moov := boxes[0]
	if !moov.Container || moov.Type != "moov" {
		t.Fatalf("expected moov container, got %+v", moov)
	}
	if len(moov.Children) != 1 || moov.Children[0].Type != "trak" {
		t.Fatalf("expected trak child, got %+v", moov.Children)
	}

	trak := moov.Children[0]
	if len(trak.Children) != 1 || trak.Children[0].Type != "edts" {
		t.Fatalf("expected edts child, got %+v", trak.Children)
	}

	edts := trak.Children[0]
	if len(edts.Children) != 1 || edts.Children[0].Type != "free" {
		t.Fatalf("expected free leaf, got %+v", edts.Children)
	}
	if edts.Children[0].Offset != 24 {
		t.Errorf("expected free box at offset 24, got %d", edts.Children[0].Offset)
	}
}

func TestParseBoxes_ContainerSizeSumsChildren(t *testing.T) {
	data := buildContainer("moov",
		buildBox("mvhd", make([]byte, 100)),
		buildContainer("udta", buildBox("free", make([]byte, 3))),
	)

	boxes := parseAll(t, data, registry.DefaultOptions())
	moov := boxes[0]

	var sum uint64
	for _, c := range moov.Children {
		sum += c.Size
	}
	if moov.Size != uint64(moov.HeaderSize)+sum {
		t.Errorf("container size %d != header %d + children %d", moov.Size, moov.HeaderSize, sum)
	}
}

func TestParseBoxes_ExtendedSize(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	data := []byte{
		0x00, 0x00, 0x00, 0x01, // size 1 marks the 64-bit field
		'f', 'r', 'e', 'e',
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x14, // largesize 20
	}
	data = append(data, payload...)

	boxes := parseAll(t, data, registry.DefaultOptions())
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	if boxes[0].Size != 20 || boxes[0].HeaderSize != 16 {
		t.Errorf("expected size 20 with header 16, got size %d header %d",
			boxes[0].Size, boxes[0].HeaderSize)
	}
	if !bytes.Equal(boxes[0].Raw, payload) {
		t.Errorf("expected payload %x, got %x", payload, boxes[0].Raw)
	}
}

func TestParseBoxes_SizeZeroRunsToEnd(t *testing.T) {
	data := buildBox("free", make([]byte, 4))
	data = append(data, []byte{
		0x00, 0x00, 0x00, 0x00, // size 0: box runs to end of parent
		'm', 'd', 'a', 't',
		0x01, 0x02, 0x03,
	}...)

	boxes := parseAll(t, data, registry.DefaultOptions())
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(boxes))
	}

	mdat := boxes[1]
	if mdat.Size != 11 || mdat.HeaderSize != 8 {
		t.Errorf("expected size 11 with header 8, got size %d header %d", mdat.Size, mdat.HeaderSize)
	}
	if !bytes.Equal(mdat.Raw, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("unexpected mdat payload %x", mdat.Raw)
	}
}

func TestParseBoxes_SizeSmallerThanHeader(t *testing.T) {
	data := buildBox("free", make([]byte, 4))
	data = append(data, []byte{
		0x00, 0x00, 0x00, 0x04, // size 4 cannot hold an 8 byte header
		'm', 'o', 'o', 'v',
	}...)

	boxes, err := parsePartial(data)
	if err == nil {
		t.Fatal("expected error for box smaller than its header")
	}

	var corrupted *types.CorruptedFileError
	if !errors.As(err, &corrupted) {
		t.Fatalf("expected CorruptedFileError, got %T", err)
	}
	if corrupted.Kind != types.KindMalformed {
		t.Errorf("expected KindMalformed, got %v", corrupted.Kind)
	}
	if corrupted.Offset != 12 {
		t.Errorf("expected error at offset 12, got %d", corrupted.Offset)
	}
	if len(boxes) != 1 || boxes[0].Type != "free" {
		t.Errorf("expected earlier sibling retained, got %+v", boxes)
	}
}

func TestParseBoxes_ChildOverrunsParent(t *testing.T) {
	overrun := []byte{
		0x00, 0x00, 0x01, 0x00, // size 256, far beyond the container
		'f', 'r', 'e', 'e',
	}
	good := buildBox("mvhd", make([]byte, 4))
	data := buildContainer("moov", good, overrun)

	boxes, err := parsePartial(data)
	if err == nil {
		t.Fatal("expected error for child extending beyond parent")
	}

	var corrupted *types.CorruptedFileError
	if !errors.As(err, &corrupted) {
		t.Fatalf("expected CorruptedFileError, got %T", err)
	}
	if corrupted.Kind != types.KindSizeExceedsBuffer {
		t.Errorf("expected KindSizeExceedsBuffer, got %v", corrupted.Kind)
	}

	// The container is kept with the children that parsed.
	if len(boxes) != 1 {
		t.Fatalf("expected moov retained, got %d boxes", len(boxes))
	}
	if len(boxes[0].Children) != 1 || boxes[0].Children[0].Type != "mvhd" {
		t.Errorf("expected mvhd child retained, got %+v", boxes[0].Children)
	}
}

// nestContainers wraps an empty innermost box in n levels of moov.
func nestContainers(n int) []byte {
	var data []byte
	for range n {
		data = buildContainer("moov", data)
	}
	return data
}

func TestParseBoxes_DepthLimit(t *testing.T) {
	if _, err := parsePartial(nestContainers(20)); err != nil {
		t.Fatalf("20 levels should parse: %v", err)
	}

	_, err := parsePartial(nestContainers(21))
	if err == nil {
		t.Fatal("expected depth error at 21 levels")
	}
	var corrupted *types.CorruptedFileError
	if !errors.As(err, &corrupted) {
		t.Fatalf("expected CorruptedFileError, got %T", err)
	}
	if corrupted.Kind != types.KindDepthExceeded {
		t.Errorf("expected KindDepthExceeded, got %v", corrupted.Kind)
	}
}

func TestParseBoxes_MetaSkipsVersionFlags(t *testing.T) {
	child := buildBox("free", make([]byte, 2))
	payload := append([]byte{0x00, 0x00, 0x00, 0x00}, child...)
	data := buildBox("meta", payload)

	boxes := parseAll(t, data, registry.DefaultOptions())
	meta := boxes[0]
	if !meta.Container {
		t.Fatal("meta not treated as container")
	}
	if len(meta.Children) != 1 || meta.Children[0].Type != "free" {
		t.Fatalf("expected free child after version/flags, got %+v", meta.Children)
	}
	if meta.Children[0].Offset != 12 {
		t.Errorf("expected child at offset 12, got %d", meta.Children[0].Offset)
	}
}

func TestParseBoxes_DrefHeaderAndChildren(t *testing.T) {
	url := buildBox("url ", []byte{0x00, 0x00, 0x00, 0x01}) // self-contained flag
	payload := []byte{
		0x00, 0x00, 0x00, 0x00, // version and flags
		0x00, 0x00, 0x00, 0x01, // entry count
	}
	data := buildBox("dref", append(payload, url...))

	boxes := parseAll(t, data, registry.DefaultOptions())
	dref := boxes[0]
	if !dref.Container {
		t.Fatal("dref not treated as container")
	}

	content, ok := dref.Content.(*types.DataReferenceBox)
	if !ok {
		t.Fatalf("expected DataReferenceBox content, got %T", dref.Content)
	}
	if content.EntryCount != 1 {
		t.Errorf("expected entry count 1, got %d", content.EntryCount)
	}

	if len(dref.Children) != 1 {
		t.Fatalf("expected 1 child entry, got %d", len(dref.Children))
	}
	entry, ok := dref.Children[0].Content.(*types.DataEntryURLBox)
	if !ok {
		t.Fatalf("expected DataEntryURLBox content, got %T", dref.Children[0].Content)
	}
	if !entry.SelfContained() {
		t.Error("expected self-contained entry")
	}
	if entry.Location != "(data in same file)" {
		t.Errorf("unexpected location %q", entry.Location)
	}
}

func TestParseBoxes_PayloadCap(t *testing.T) {
	opts := registry.DefaultOptions()
	opts.MaxRawPayload = 8

	data := buildBox("free", make([]byte, 9))
	data = append(data, buildBox("skip", make([]byte, 8))...)

	boxes := parseAll(t, data, opts)
	if boxes[0].Raw != nil {
		t.Error("payload above cap should not be retained")
	}
	if len(boxes[1].Raw) != 8 {
		t.Errorf("payload at cap should be retained, got %d bytes", len(boxes[1].Raw))
	}

	// Offset and size still describe the skipped payload.
	if boxes[0].DataOffset() != 8 || boxes[0].DataSize() != 9 {
		t.Errorf("unexpected payload location %d+%d", boxes[0].DataOffset(), boxes[0].DataSize())
	}
}

func TestParseBoxes_TypeSanitized(t *testing.T) {
	data := buildBox("\x01ab\xFF", make([]byte, 2))

	boxes := parseAll(t, data, registry.DefaultOptions())
	if boxes[0].Type != "?ab?" {
		t.Errorf("expected type %q, got %q", "?ab?", boxes[0].Type)
	}
}

func TestParseBoxes_ItunesValueDecoded(t *testing.T) {
	item := buildContainer("\xA9nam", buildDataBox(0x01, []byte("Title")))
	data := buildContainer("moov", buildContainer("udta", item))

	boxes := parseAll(t, data, registry.DefaultOptions())
	nam := boxes[0].Children[0].Children[0]
	if nam.Type != "©nam" {
		t.Fatalf("expected ©nam, got %q", nam.Type)
	}
	if !nam.Container {
		t.Error("iTunes item not treated as container")
	}
	if nam.Itunes == nil {
		t.Fatal("expected decoded iTunes value")
	}
	if nam.Itunes.Type != types.ItunesTypeUTF8 {
		t.Errorf("expected UTF-8 type, got %v", nam.Itunes.Type)
	}

	text, ok := nam.Itunes.Value.(*types.ItunesText)
	if !ok {
		t.Fatalf("expected ItunesText, got %T", nam.Itunes.Value)
	}
	if text.Text != "Title" {
		t.Errorf("expected %q, got %q", "Title", text.Text)
	}
}

func TestParseBoxes_ItunesDecodeDisabled(t *testing.T) {
	opts := registry.DefaultOptions()
	opts.DecodeItunes = false

	data := buildContainer("\xA9nam", buildDataBox(0x01, []byte("Title")))
	boxes := parseAll(t, data, opts)
	if boxes[0].Itunes != nil {
		t.Error("expected no iTunes decode when disabled")
	}
	if len(boxes[0].Children) != 1 {
		t.Error("data child should still be present")
	}
}

func TestParseBoxes_ItunesBadDataIgnored(t *testing.T) {
	// Payload shorter than the 8 byte data box preamble.
	data := buildContainer("\xA9nam", buildBox("data", []byte{0x00, 0x00}))

	boxes := parseAll(t, data, registry.DefaultOptions())
	if boxes[0].Itunes != nil {
		t.Error("undecodable value should be ignored")
	}
}

func TestParseBoxes_ItunesFirstDataChildWins(t *testing.T) {
	empty := buildBox("data", nil)
	full := buildDataBox(0x01, []byte("Title"))
	data := buildContainer("trkn", empty, full)

	boxes := parseAll(t, data, registry.DefaultOptions())
	if boxes[0].Itunes != nil {
		t.Error("decode should only consider the first data child")
	}
}
