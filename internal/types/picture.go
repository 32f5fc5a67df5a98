package types

import "fmt"

// Picture is the content of an APIC (attached picture) frame.
type Picture struct {
	// Type of picture (front cover, back cover, artist photo, etc.)
	Type PictureType

	// MIME type of the image data
	MIMEType string // "image/jpeg", "image/png", "image/gif"

	// Description of the picture (optional)
	Description string

	// Image binary data
	Data []byte
}

// PictureType is the APIC picture type byte.
//
// See: https://id3.org/id3v2.4.0-frames (APIC frame)
type PictureType int

const (
	PictureOther             PictureType = iota // Other
	PictureIcon                                 // File icon (32x32 PNG)
	PictureOtherIcon                            // Other file icon
	PictureFrontCover                           // Front cover
	PictureBackCover                            // Back cover
	PictureLeaflet                              // Leaflet page
	PictureMedia                                // Media (CD/vinyl label)
	PictureLeadArtist                           // Lead artist/performer/soloist
	PictureArtist                               // Artist/performer
	PictureConductor                            // Conductor
	PictureBand                                 // Band/orchestra
	PictureComposer                             // Composer
	PictureLyricist                             // Lyricist/text writer
	PictureRecordingLocation                    // Recording location
	PictureDuringRecording                      // During recording
	PictureDuringPerformance                    // During performance
	PictureVideoCapture                         // Movie/video screen capture
	PictureBrightFish                           // A bright colored fish
	PictureIllustration                         // Illustration
	PictureBandLogotype                         // Band/artist logotype
	PicturePublisherLogotype                    // Publisher/studio logotype
)

var pictureTypeNames = [...]string{
	"Other", "File icon", "Other file icon", "Front cover", "Back cover",
	"Leaflet page", "Media", "Lead artist", "Artist", "Conductor",
	"Band", "Composer", "Lyricist", "Recording location", "During recording",
	"During performance", "Video capture", "A bright colored fish", "Illustration",
	"Band logotype", "Publisher logotype",
}

func (t PictureType) String() string {
	if t >= 0 && int(t) < len(pictureTypeNames) {
		return pictureTypeNames[t]
	}
	return fmt.Sprintf("PictureType(%d)", int(t))
}

// String returns a human-readable description of the picture.
//
// Example output: "Front cover (JPEG, 245KB)"
func (p Picture) String() string {
	return fmt.Sprintf("%s (%s, %s)", p.Type, mimeToFormat(p.MIMEType), formatSize(len(p.Data)))
}

// Ext returns a file extension for the MIME type, ".bin" when unknown.
func (p Picture) Ext() string {
	switch p.MIMEType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/webp":
		return ".webp"
	case "image/tiff":
		return ".tiff"
	}
	return ".bin"
}

// formatSize formats byte size in human-readable form.
func formatSize(bytes int) string {
	const (
		KB = 1024
		MB = 1024 * KB
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%dKB", bytes/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func mimeToFormat(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "JPEG"
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	case "image/bmp":
		return "BMP"
	case "image/tiff":
		return "TIFF"
	case "image/webp":
		return "WebP"
	default:
		return "Image"
	}
}
