package registry

import "github.com/simonhull/id3tag/internal/types"

type fieldEntry struct {
	id   string
	desc string
	num  int
	kind types.FieldKind
}

type frameEntry struct {
	id     string
	desc   string
	fields []string
	num    int
}

// Symbolic field ids.
const (
	FieldTextEnc         = "textenc"
	FieldText            = "text"
	FieldURL             = "url"
	FieldData            = "data"
	FieldDescription     = "description"
	FieldOwner           = "owner"
	FieldEmail           = "email"
	FieldRating          = "rating"
	FieldFilename        = "filename"
	FieldLanguage        = "language"
	FieldPictureType     = "picturetype"
	FieldImageFormat     = "imageformat"
	FieldMimeType        = "mimetype"
	FieldCounter         = "counter"
	FieldIdentifier      = "identifier"
	FieldVolumeAdj       = "volumeadj"
	FieldNumBits         = "numbits"
	FieldVolChgRight     = "volchgright"
	FieldVolChgLeft      = "volchgleft"
	FieldPeakVolRight    = "peakvolright"
	FieldPeakVolLeft     = "peakvolleft"
	FieldTimestampFormat = "timestampformat"
	FieldContentType     = "contenttype"
)

var fieldTable = []fieldEntry{
	{num: 1, id: FieldTextEnc, desc: "Text encoding (unicode or ASCII)", kind: types.KindInteger},
	{num: 2, id: FieldText, desc: "Text field", kind: types.KindText},
	{num: 3, id: FieldURL, desc: "A URL", kind: types.KindText},
	{num: 4, id: FieldData, desc: "Data field", kind: types.KindBinary},
	{num: 5, id: FieldDescription, desc: "Description field", kind: types.KindText},
	{num: 6, id: FieldOwner, desc: "Owner field", kind: types.KindText},
	{num: 7, id: FieldEmail, desc: "Email field", kind: types.KindText},
	{num: 8, id: FieldRating, desc: "Rating field", kind: types.KindInteger},
	{num: 9, id: FieldFilename, desc: "Filename field", kind: types.KindText},
	{num: 10, id: FieldLanguage, desc: "Language field", kind: types.KindText},
	{num: 11, id: FieldPictureType, desc: "Picture type field", kind: types.KindInteger},
	{num: 12, id: FieldImageFormat, desc: "Image format field", kind: types.KindText},
	{num: 13, id: FieldMimeType, desc: "Mimetype field", kind: types.KindText},
	{num: 14, id: FieldCounter, desc: "Counter field", kind: types.KindInteger},
	{num: 15, id: FieldIdentifier, desc: "Identifier/Symbol field", kind: types.KindInteger},
	{num: 16, id: FieldVolumeAdj, desc: "Volume adjustment field", kind: types.KindInteger},
	{num: 17, id: FieldNumBits, desc: "Number of bits field", kind: types.KindInteger},
	{num: 18, id: FieldVolChgRight, desc: "Volume change on the right channel", kind: types.KindInteger},
	{num: 19, id: FieldVolChgLeft, desc: "Volume change on the left channel", kind: types.KindInteger},
	{num: 20, id: FieldPeakVolRight, desc: "Peak volume on the right channel", kind: types.KindInteger},
	{num: 21, id: FieldPeakVolLeft, desc: "Peak volume on the left channel", kind: types.KindInteger},
	{num: 22, id: FieldTimestampFormat, desc: "SYLT timestamp format", kind: types.KindInteger},
	{num: 23, id: FieldContentType, desc: "SYLT content type", kind: types.KindInteger},
}

var (
	textFrame = []string{FieldTextEnc, FieldText}
	urlFrame  = []string{FieldURL}
	blobFrame = []string{FieldData}
)

// frameTable is the canonical ID3v2.3/2.4 catalogue. Frames whose bodies the
// engine does not interpret field by field carry a single data blob.
var frameTable = []frameEntry{
	{num: 1, id: "AENC", desc: "Audio encryption", fields: []string{FieldOwner, FieldData}},
	{num: 2, id: "APIC", desc: "Attached picture", fields: []string{FieldTextEnc, FieldMimeType, FieldPictureType, FieldDescription, FieldData}},
	{num: 3, id: "ASPI", desc: "Audio seek point index", fields: blobFrame},
	{num: 4, id: "COMM", desc: "Comments", fields: []string{FieldTextEnc, FieldLanguage, FieldDescription, FieldText}},
	{num: 5, id: "COMR", desc: "Commercial frame", fields: blobFrame},
	{num: 6, id: "ENCR", desc: "Encryption method registration", fields: []string{FieldOwner, FieldIdentifier, FieldData}},
	{num: 7, id: "EQU2", desc: "Equalisation (2)", fields: blobFrame},
	{num: 8, id: "EQUA", desc: "Equalization", fields: blobFrame},
	{num: 9, id: "ETCO", desc: "Event timing codes", fields: blobFrame},
	{num: 10, id: "GEOB", desc: "General encapsulated object", fields: []string{FieldTextEnc, FieldMimeType, FieldFilename, FieldDescription, FieldData}},
	{num: 11, id: "GRID", desc: "Group identification registration", fields: []string{FieldOwner, FieldIdentifier, FieldData}},
	{num: 12, id: "IPLS", desc: "Involved people list", fields: textFrame},
	{num: 13, id: "LINK", desc: "Linked information", fields: blobFrame},
	{num: 14, id: "MCDI", desc: "Music CD identifier", fields: blobFrame},
	{num: 15, id: "MLLT", desc: "MPEG location lookup table", fields: blobFrame},
	{num: 16, id: "OWNE", desc: "Ownership frame", fields: blobFrame},
	{num: 17, id: "PRIV", desc: "Private frame", fields: []string{FieldOwner, FieldData}},
	{num: 18, id: "PCNT", desc: "Play counter", fields: []string{FieldCounter}},
	{num: 19, id: "POPM", desc: "Popularimeter", fields: []string{FieldEmail, FieldRating, FieldCounter}},
	{num: 20, id: "POSS", desc: "Position synchronisation frame", fields: blobFrame},
	{num: 21, id: "RBUF", desc: "Recommended buffer size", fields: blobFrame},
	{num: 22, id: "RVA2", desc: "Relative volume adjustment (2)", fields: blobFrame},
	{num: 23, id: "RVAD", desc: "Relative volume adjustment", fields: blobFrame},
	{num: 24, id: "RVRB", desc: "Reverb", fields: blobFrame},
	{num: 25, id: "SEEK", desc: "Seek frame", fields: blobFrame},
	{num: 26, id: "SIGN", desc: "Signature frame", fields: []string{FieldIdentifier, FieldData}},
	{num: 27, id: "SYLT", desc: "Synchronized lyric/text", fields: []string{FieldTextEnc, FieldLanguage, FieldTimestampFormat, FieldContentType, FieldDescription, FieldData}},
	{num: 28, id: "SYTC", desc: "Synchronized tempo codes", fields: []string{FieldTimestampFormat, FieldData}},
	{num: 29, id: "TALB", desc: "Album/Movie/Show title", fields: textFrame},
	{num: 30, id: "TBPM", desc: "BPM (beats per minute)", fields: textFrame},
	{num: 31, id: "TCOM", desc: "Composer", fields: textFrame},
	{num: 32, id: "TCON", desc: "Content type", fields: textFrame},
	{num: 33, id: "TCOP", desc: "Copyright message", fields: textFrame},
	{num: 34, id: "TDAT", desc: "Date", fields: textFrame},
	{num: 35, id: "TDEN", desc: "Encoding time", fields: textFrame},
	{num: 36, id: "TDLY", desc: "Playlist delay", fields: textFrame},
	{num: 37, id: "TDOR", desc: "Original release time", fields: textFrame},
	{num: 38, id: "TDRC", desc: "Recording time", fields: textFrame},
	{num: 39, id: "TDRL", desc: "Release time", fields: textFrame},
	{num: 40, id: "TDTG", desc: "Tagging time", fields: textFrame},
	{num: 41, id: "TIPL", desc: "Involved people list", fields: textFrame},
	{num: 42, id: "TENC", desc: "Encoded by", fields: textFrame},
	{num: 43, id: "TEXT", desc: "Lyricist/Text writer", fields: textFrame},
	{num: 44, id: "TFLT", desc: "File type", fields: textFrame},
	{num: 45, id: "TIME", desc: "Time", fields: textFrame},
	{num: 46, id: "TIT1", desc: "Content group description", fields: textFrame},
	{num: 47, id: "TIT2", desc: "Title/songname/content description", fields: textFrame},
	{num: 48, id: "TIT3", desc: "Subtitle/Description refinement", fields: textFrame},
	{num: 49, id: "TKEY", desc: "Initial key", fields: textFrame},
	{num: 50, id: "TLAN", desc: "Language(s)", fields: textFrame},
	{num: 51, id: "TLEN", desc: "Length", fields: textFrame},
	{num: 52, id: "TMCL", desc: "Musician credits list", fields: textFrame},
	{num: 53, id: "TMED", desc: "Media type", fields: textFrame},
	{num: 54, id: "TMOO", desc: "Mood", fields: textFrame},
	{num: 55, id: "TOAL", desc: "Original album/movie/show title", fields: textFrame},
	{num: 56, id: "TOFN", desc: "Original filename", fields: textFrame},
	{num: 57, id: "TOLY", desc: "Original lyricist(s)/text writer(s)", fields: textFrame},
	{num: 58, id: "TOPE", desc: "Original artist(s)/performer(s)", fields: textFrame},
	{num: 59, id: "TORY", desc: "Original release year", fields: textFrame},
	{num: 60, id: "TOWN", desc: "File owner/licensee", fields: textFrame},
	{num: 61, id: "TPE1", desc: "Lead performer(s)/Soloist(s)", fields: textFrame},
	{num: 62, id: "TPE2", desc: "Band/orchestra/accompaniment", fields: textFrame},
	{num: 63, id: "TPE3", desc: "Conductor/performer refinement", fields: textFrame},
	{num: 64, id: "TPE4", desc: "Interpreted, remixed, or otherwise modified by", fields: textFrame},
	{num: 65, id: "TPOS", desc: "Part of a set", fields: textFrame},
	{num: 66, id: "TPRO", desc: "Produced notice", fields: textFrame},
	{num: 67, id: "TPUB", desc: "Publisher", fields: textFrame},
	{num: 68, id: "TRCK", desc: "Track number/Position in set", fields: textFrame},
	{num: 69, id: "TRDA", desc: "Recording dates", fields: textFrame},
	{num: 70, id: "TRSN", desc: "Internet radio station name", fields: textFrame},
	{num: 71, id: "TRSO", desc: "Internet radio station owner", fields: textFrame},
	{num: 72, id: "TSIZ", desc: "Size", fields: textFrame},
	{num: 73, id: "TSOA", desc: "Album sort order", fields: textFrame},
	{num: 74, id: "TSOP", desc: "Performer sort order", fields: textFrame},
	{num: 75, id: "TSOT", desc: "Title sort order", fields: textFrame},
	{num: 76, id: "TSRC", desc: "ISRC (international standard recording code)", fields: textFrame},
	{num: 77, id: "TSSE", desc: "Software/Hardware and settings used for encoding", fields: textFrame},
	{num: 78, id: "TSST", desc: "Set subtitle", fields: textFrame},
	{num: 79, id: "TXXX", desc: "User defined text information", fields: []string{FieldTextEnc, FieldDescription, FieldText}},
	{num: 80, id: "TYER", desc: "Year", fields: textFrame},
	{num: 81, id: "UFID", desc: "Unique file identifier", fields: []string{FieldOwner, FieldData}},
	{num: 82, id: "USER", desc: "Terms of use", fields: []string{FieldTextEnc, FieldLanguage, FieldText}},
	{num: 83, id: "USLT", desc: "Unsynchronized lyric/text transcription", fields: []string{FieldTextEnc, FieldLanguage, FieldDescription, FieldText}},
	{num: 84, id: "WCOM", desc: "Commercial information", fields: urlFrame},
	{num: 85, id: "WCOP", desc: "Copyright/Legal information", fields: urlFrame},
	{num: 86, id: "WOAF", desc: "Official audio file webpage", fields: urlFrame},
	{num: 87, id: "WOAR", desc: "Official artist/performer webpage", fields: urlFrame},
	{num: 88, id: "WOAS", desc: "Official audio source webpage", fields: urlFrame},
	{num: 89, id: "WORS", desc: "Official internet radio station homepage", fields: urlFrame},
	{num: 90, id: "WPAY", desc: "Payment", fields: urlFrame},
	{num: 91, id: "WPUB", desc: "Official publisher webpage", fields: urlFrame},
	{num: 92, id: "WXXX", desc: "User defined URL link", fields: []string{FieldTextEnc, FieldDescription, FieldURL}},
}

// genreTable lists the 80 ID3v1 genres followed by the Winamp extensions.
var genreTable = []string{
	"Blues", "Classic Rock", "Country", "Dance",
	"Disco", "Funk", "Grunge", "Hip-Hop",
	"Jazz", "Metal", "New Age", "Oldies",
	"Other", "Pop", "R&B", "Rap",
	"Reggae", "Rock", "Techno", "Industrial",
	"Alternative", "Ska", "Death Metal", "Pranks",
	"Soundtrack", "Euro-Techno", "Ambient", "Trip-Hop",
	"Vocal", "Jazz+Funk", "Fusion", "Trance",
	"Classical", "Instrumental", "Acid", "House",
	"Game", "Sound Clip", "Gospel", "Noise",
	"AlternRock", "Bass", "Soul", "Punk",
	"Space", "Meditative", "Instrumental Pop", "Instrumental Rock",
	"Ethnic", "Gothic", "Darkwave", "Techno-Industrial",
	"Electronic", "Pop-Folk", "Eurodance", "Dream",
	"Southern Rock", "Comedy", "Cult", "Gangsta",
	"Top 40", "Christian Rap", "Pop/Funk", "Jungle",
	"Native American", "Cabaret", "New Wave", "Psychadelic",
	"Rave", "Showtunes", "Trailer", "Lo-Fi",
	"Tribal", "Acid Punk", "Acid Jazz", "Polka",
	"Retro", "Musical", "Rock & Roll", "Hard Rock",
	// Winamp extensions
	"Folk", "Folk-Rock", "National Folk", "Swing",
	"Fast Fusion", "Bebob", "Latin", "Revival",
	"Celtic", "Bluegrass", "Avantgarde", "Gothic Rock",
	"Progressive Rock", "Psychedelic Rock", "Symphonic Rock", "Slow Rock",
	"Big Band", "Chorus", "Easy Listening", "Acoustic",
	"Humour", "Speech", "Chanson", "Opera",
	"Chamber Music", "Sonata", "Symphony", "Booty Bass",
	"Primus", "Porn Groove", "Satire", "Slow Jam",
	"Club", "Tango", "Samba", "Folklore",
	"Ballad", "Power Ballad", "Rhythmic Soul", "Freestyle",
	"Duet", "Punk Rock", "Drum Solo", "A capella",
	"Euro-House", "Dance Hall", "Goa", "Drum & Bass",
	"Club-House", "Hardcore", "Terror", "Indie",
	"Britpop", "Negerpunk", "Polsk Punk", "Beat",
	"Christian Gangsta Rap", "Heavy Metal", "Black Metal", "Crossover",
	"Contemporary Christian", "Christian Rock", "Merengue", "Salsa",
	"Trash Metal", "Anime", "JPop", "Synthpop",
}
