package id3v2

// validV3 holds every frame ID defined by ID3v2.3, plus CHAP and CTOC
// from the chapter addendum.
var validV3 = map[string]bool{
	// Text information frames
	"TALB": true, "TBPM": true, "TCOM": true, "TCON": true, "TCOP": true,
	"TDAT": true, "TDLY": true, "TENC": true, "TEXT": true, "TFLT": true,
	"TIME": true, "TIT1": true, "TIT2": true, "TIT3": true, "TKEY": true,
	"TLAN": true, "TLEN": true, "TMED": true, "TOAL": true, "TOFN": true,
	"TOLY": true, "TOPE": true, "TORY": true, "TOWN": true, "TPE1": true,
	"TPE2": true, "TPE3": true, "TPE4": true, "TPOS": true, "TPUB": true,
	"TRCK": true, "TRDA": true, "TRSN": true, "TRSO": true, "TSIZ": true,
	"TSRC": true, "TSSE": true, "TYER": true, "TXXX": true,

	// URL link frames
	"WCOM": true, "WCOP": true, "WOAF": true, "WOAR": true, "WOAS": true,
	"WORS": true, "WPAY": true, "WPUB": true, "WXXX": true,

	// Everything else
	"UFID": true, "MCDI": true, "ETCO": true, "MLLT": true, "SYTC": true,
	"USLT": true, "SYLT": true, "COMM": true, "RVAD": true, "EQUA": true,
	"RVRB": true, "PCNT": true, "POPM": true, "RBUF": true, "AENC": true,
	"LINK": true, "POSS": true, "USER": true, "OWNE": true, "COMR": true,
	"ENCR": true, "GRID": true, "PRIV": true, "GEOB": true, "IPLS": true,
	"APIC": true,

	// Chapter addendum
	"CHAP": true, "CTOC": true,
}

// validV4 holds every frame ID defined by ID3v2.4, plus CHAP and CTOC.
var validV4 = map[string]bool{
	// Text information frames
	"TALB": true, "TBPM": true, "TCOM": true, "TCON": true, "TCOP": true,
	"TDEN": true, "TDLY": true, "TDOR": true, "TDRC": true, "TDRL": true,
	"TDTG": true, "TENC": true, "TEXT": true, "TFLT": true, "TIPL": true,
	"TIT1": true, "TIT2": true, "TIT3": true, "TKEY": true, "TLAN": true,
	"TLEN": true, "TMCL": true, "TMED": true, "TMOO": true, "TOAL": true,
	"TOFN": true, "TOLY": true, "TOPE": true, "TOWN": true, "TPE1": true,
	"TPE2": true, "TPE3": true, "TPE4": true, "TPOS": true, "TPRO": true,
	"TPUB": true, "TRCK": true, "TRSN": true, "TRSO": true, "TSOA": true,
	"TSOP": true, "TSOT": true, "TSRC": true, "TSSE": true, "TSST": true,
	"TXXX": true,

	// URL link frames
	"WCOM": true, "WCOP": true, "WOAF": true, "WOAR": true, "WOAS": true,
	"WORS": true, "WPAY": true, "WPUB": true, "WXXX": true,

	// Everything else
	"UFID": true, "MCDI": true, "ETCO": true, "MLLT": true, "SYTC": true,
	"USLT": true, "SYLT": true, "COMM": true, "RVA2": true, "EQU2": true,
	"RVRB": true, "PCNT": true, "POPM": true, "RBUF": true, "AENC": true,
	"LINK": true, "POSS": true, "USER": true, "OWNE": true, "COMR": true,
	"ENCR": true, "GRID": true, "PRIV": true, "GEOB": true, "APIC": true,
	"SEEK": true, "ASPI": true, "SIGN": true,

	// Chapter addendum
	"CHAP": true, "CTOC": true,
}

// ValidFrameID reports whether id is a defined frame ID for the given
// major tag version.
func ValidFrameID(id string, major uint8) bool {
	switch major {
	case 3:
		return validV3[id]
	case 4:
		return validV4[id]
	default:
		return false
	}
}
