package id3v2

// frameDescriptions maps frame IDs from both tag versions to the
// human-readable names the ID3 documents give them.
var frameDescriptions = map[string]string{
	"TIT1": "Content group description",
	"TIT2": "Title/songname/content description",
	"TIT3": "Subtitle/Description refinement",
	"TALB": "Album/Movie/Show title",
	"TOAL": "Original album/movie/show title",
	"TRCK": "Track number/Position in set",
	"TPOS": "Part of a set",
	"TSST": "Set subtitle",
	"TSRC": "ISRC (international standard recording code)",
	"TPE1": "Lead performer(s)/Soloist(s)",
	"TPE2": "Band/orchestra/accompaniment",
	"TPE3": "Conductor/performer refinement",
	"TPE4": "Interpreted, remixed, or otherwise modified by",
	"TOPE": "Original artist(s)/performer(s)",
	"TEXT": "Lyricist/Text writer",
	"TOLY": "Original lyricist(s)/text writer(s)",
	"TCOM": "Composer",
	"TMCL": "Musician credits list",
	"TIPL": "Involved people list",
	"TENC": "Encoded by",
	"TBPM": "BPM (beats per minute)",
	"TLEN": "Length",
	"TKEY": "Initial key",
	"TLAN": "Language(s)",
	"TCON": "Content type",
	"TFLT": "File type",
	"TMED": "Media type",
	"TMOO": "Mood",
	"TCOP": "Copyright message",
	"TPRO": "Produced notice",
	"TPUB": "Publisher",
	"TOWN": "File owner/licensee",
	"TRSN": "Internet radio station name",
	"TRSO": "Internet radio station owner",
	"TOFN": "Original filename",
	"TDLY": "Playlist delay",
	"TDEN": "Encoding time",
	"TDOR": "Original release time",
	"TDRC": "Recording time",
	"TDRL": "Release time",
	"TDTG": "Tagging time",
	"TSSE": "Software/Hardware and settings used for encoding",
	"TSOA": "Album sort order",
	"TSOP": "Performer sort order",
	"TSOT": "Title sort order",
	"TXXX": "User defined text information frame",
	"TDAT": "Date",
	"TIME": "Time",
	"TORY": "Original release year",
	"TRDA": "Recording dates",
	"TSIZ": "Size",
	"TYER": "Year",
	"IPLS": "Involved people list",
	"RVAD": "Relative volume adjustment",
	"EQUA": "Equalisation",
	"RVA2": "Relative volume adjustment (2)",
	"EQU2": "Equalisation (2)",
	"SEEK": "Seek frame",
	"ASPI": "Audio seek point index",
	"SIGN": "Signature frame",
	"WCOM": "Commercial information",
	"WCOP": "Copyright/Legal information",
	"WOAF": "Official audio file webpage",
	"WOAR": "Official artist/performer webpage",
	"WOAS": "Official audio source webpage",
	"WORS": "Official internet radio station homepage",
	"WPAY": "Payment",
	"WPUB": "Publishers official webpage",
	"WXXX": "User defined URL link frame",
	"MCDI": "Music CD identifier",
	"ETCO": "Event timing codes",
	"MLLT": "MPEG location lookup table",
	"SYTC": "Synchronized tempo codes",
	"USLT": "Unsychronized lyric/text transcription",
	"SYLT": "Synchronized lyric/text",
	"COMM": "Comments",
	"RVRB": "Reverb",
	"PCNT": "Play counter",
	"POPM": "Popularimeter",
	"RBUF": "Recommended buffer size",
	"AENC": "Audio encryption",
	"LINK": "Linked information",
	"POSS": "Position synchronisation frame",
	"USER": "Terms of use",
	"OWNE": "Ownership frame",
	"COMR": "Commercial frame",
	"ENCR": "Encryption method registration",
	"GRID": "Group identification registration",
	"PRIV": "Private frame",
	"GEOB": "General encapsulated object",
	"UFID": "Unique file identifier",
	"APIC": "Attached picture",
	"CHAP": "Chapter frame",
	"CTOC": "Table of contents frame",
}

// Describe returns the standard name of a frame ID, or "Unknown frame
// type" for IDs neither tag version defines.
func Describe(id string) string {
	if desc, ok := frameDescriptions[id]; ok {
		return desc
	}
	return "Unknown frame type"
}
