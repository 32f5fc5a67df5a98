package id3tag

import (
	"github.com/simonhull/id3tag/internal/registry"
	"github.com/simonhull/id3tag/internal/types"
)

// Picture is the content of an APIC frame.
type Picture = types.Picture

// PictureType is the APIC picture type.
type PictureType = types.PictureType

// Re-export all picture type constants
const (
	PictureOther             = types.PictureOther
	PictureIcon              = types.PictureIcon
	PictureOtherIcon         = types.PictureOtherIcon
	PictureFrontCover        = types.PictureFrontCover
	PictureBackCover         = types.PictureBackCover
	PictureLeaflet           = types.PictureLeaflet
	PictureMedia             = types.PictureMedia
	PictureLeadArtist        = types.PictureLeadArtist
	PictureArtist            = types.PictureArtist
	PictureConductor         = types.PictureConductor
	PictureBand              = types.PictureBand
	PictureComposer          = types.PictureComposer
	PictureLyricist          = types.PictureLyricist
	PictureRecordingLocation = types.PictureRecordingLocation
	PictureDuringRecording   = types.PictureDuringRecording
	PictureDuringPerformance = types.PictureDuringPerformance
	PictureVideoCapture      = types.PictureVideoCapture
	PictureBrightFish        = types.PictureBrightFish
	PictureIllustration      = types.PictureIllustration
	PictureBandLogotype      = types.PictureBandLogotype
	PicturePublisherLogotype = types.PicturePublisherLogotype
)

// Pictures returns the content of every APIC frame in order.
func (t *Tag) Pictures() []Picture {
	var out []Picture
	for _, f := range t.Select("APIC") {
		var p Picture
		if n, ok := f.fields[registry.FieldPictureType].(int); ok {
			p.Type = PictureType(n)
		}
		p.MIMEType, _ = f.fields[registry.FieldMimeType].(string)
		p.Description, _ = f.fields[registry.FieldDescription].(string)
		p.Data, _ = f.fields[registry.FieldData].([]byte)
		out = append(out, p)
	}
	return out
}

// AddPicture appends an APIC frame. A description outside ISO-8859-1 is
// stored as UTF-16.
func (t *Tag) AddPicture(p Picture) error {
	f, err := NewFrame("APIC")
	if err != nil {
		return err
	}

	enc := EncodingISO88591
	if !isLatin1(p.Description) {
		enc = EncodingUTF16
	}

	for _, kv := range []struct {
		field string
		value any
	}{
		{registry.FieldTextEnc, enc},
		{registry.FieldMimeType, p.MIMEType},
		{registry.FieldPictureType, int(p.Type)},
		{registry.FieldDescription, p.Description},
		{registry.FieldData, p.Data},
	} {
		if err := f.Set(kv.field, kv.value); err != nil {
			return err
		}
	}

	t.Add(f)
	return nil
}

func isLatin1(s string) bool {
	for _, r := range s {
		if r > 0xFF {
			return false
		}
	}
	return true
}
