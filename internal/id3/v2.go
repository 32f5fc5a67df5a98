package id3

import (
	"bytes"
	"encoding/binary"
	"fmt"

	binutil "github.com/simonhull/id3tag/internal/binary"
	"github.com/simonhull/id3tag/internal/types"
)

const (
	headerSize   = 10
	paddingBlock = 2048

	flagUnsync   = 0x80
	flagExtended = 0x40
	flagFooter   = 0x10
)

// Frame flags whose bodies can't be decoded as plain field layouts.
const (
	v23Unsupported = 0x0080 | 0x0040 | 0x0020 // compression, encryption, grouping
	v24Unsupported = 0x0040 | 0x0008 | 0x0004 | 0x0002 | 0x0001
)

// v2Extent returns the length of a leading ID3v2 tag (header, body and
// footer), or 0 when data doesn't start with one.
func v2Extent(data []byte) int {
	if len(data) < headerSize || string(data[:3]) != "ID3" {
		return 0
	}
	size := headerSize + int(binutil.DecodeSynchsafe(data[6:10]))
	if data[5]&flagFooter != 0 {
		size += headerSize
	}
	return min(size, len(data))
}

// parseV2 reads the ID3v2 tag at the start of the file. found reports
// whether an ID3v2 header exists at all, even one that can't be decoded.
func (e *Engine) parseV2(sr *binutil.SafeReader) (frames []*Frame, found bool, err error) {
	if sr.Size() < headerSize {
		return nil, false, nil
	}

	buf, err := sr.Slice(0, headerSize, "ID3v2 header")
	if err != nil {
		return nil, false, err
	}
	if string(buf[:3]) != "ID3" {
		return nil, false, nil
	}

	major, revision, flags := buf[3], buf[4], buf[5]
	size := int64(binutil.DecodeSynchsafe(buf[6:10]))

	if major != 3 && major != 4 {
		e.warn("v2", (&types.UnsupportedVersionError{Path: sr.Path(), Major: major, Revision: revision}).Error(), 0)
		return nil, true, nil
	}
	if flags&flagUnsync != 0 {
		e.warn("v2", "unsynchronised tag skipped", 0)
		return nil, true, nil
	}

	tagEnd := min(headerSize+size, sr.Size())
	offset := int64(headerSize)

	if flags&flagExtended != 0 {
		if major == 4 {
			n, err := binutil.ReadSynchsafe(sr, offset, "extended header size")
			if err != nil {
				return nil, true, &types.CorruptedTagError{Path: sr.Path(), Reason: err.Error(), Offset: offset}
			}
			offset += int64(n)
		} else {
			n, err := binutil.Read[uint32](sr, offset, "extended header size")
			if err != nil {
				return nil, true, &types.CorruptedTagError{Path: sr.Path(), Reason: err.Error(), Offset: offset}
			}
			offset += int64(n) + 4
		}
	}

	unsupported := uint16(v23Unsupported)
	if major == 4 {
		unsupported = v24Unsupported
	}

	for offset+headerSize <= tagEnd {
		hdr, err := sr.Slice(offset, headerSize, "frame header")
		if err != nil {
			break
		}

		// Padding
		if hdr[0] == 0 {
			break
		}

		id := string(hdr[:4])
		var n int64
		if major == 4 {
			n = int64(binutil.DecodeSynchsafe(hdr[4:8]))
		} else {
			n = int64(binary.BigEndian.Uint32(hdr[4:8]))
		}
		frameFlags := binary.BigEndian.Uint16(hdr[8:10])

		frameOff := offset
		bodyOff := offset + headerSize
		offset = bodyOff + n

		if offset > tagEnd {
			e.warn("v2", fmt.Sprintf("frame %s overruns tag end", id), frameOff)
			break
		}

		def, ok := e.reg.Frame(id)
		if !ok {
			e.log.Debug().Str("frame", id).Int64("offset", frameOff).Msg("skipping unregistered frame")
			e.warn("v2", fmt.Sprintf("unregistered frame %q skipped", id), frameOff)
			continue
		}
		if frameFlags&unsupported != 0 {
			e.log.Debug().Str("frame", id).Uint16("flags", frameFlags).Msg("skipping encoded frame")
			e.warn("v2", fmt.Sprintf("frame %s uses unsupported flags %#04x", id, frameFlags), frameOff)
			continue
		}

		body, err := sr.Slice(bodyOff, int(n), "frame "+id)
		if err != nil {
			e.warn("v2", err.Error(), bodyOff)
			continue
		}

		f, err := decodeBody(def, body)
		if err != nil {
			e.warn("v2", err.Error(), bodyOff)
			continue
		}
		frames = append(frames, f)
	}

	return frames, true, nil
}

// v23Only lists frames that ID3v2.4 dropped.
var v23Only = map[string]bool{
	"EQUA": true, "IPLS": true, "RVAD": true, "TDAT": true, "TIME": true,
	"TORY": true, "TRDA": true, "TSIZ": true, "TYER": true,
}

// tagVersion picks the major version for frames: v2.4 when a frame needs
// an encoding only v2.4 defines, unless a frame only v2.3 defines is
// present. Then the tag stays v2.3 and such text is written as UTF-16.
func tagVersion(frames []*Frame) (major byte, downgrade bool) {
	wide, legacy := false, false
	for _, f := range frames {
		if needsV24(f.encoding()) {
			wide = true
		}
		if v23Only[f.ID()] {
			legacy = true
		}
	}
	switch {
	case wide && legacy:
		return 3, true
	case wide:
		return 4, false
	}
	return 3, false
}

func needsV24(enc int) bool {
	return enc == types.EncodingUTF16BE || enc == types.EncodingUTF8
}

// renderV2 serializes frames as a complete ID3v2 tag.
func renderV2(frames []*Frame, padding bool) ([]byte, error) {
	major, downgrade := tagVersion(frames)

	var body bytes.Buffer
	bw := binutil.NewSafeWriter(&body)

	for _, f := range frames {
		if downgrade && needsV24(f.encoding()) {
			f = f.withEncoding(types.EncodingUTF16)
		}
		data, err := encodeBody(f)
		if err != nil {
			return nil, err
		}
		if err := bw.WriteString(f.ID()); err != nil {
			return nil, err
		}
		if major == 4 {
			err = bw.WriteSynchsafe(uint32(len(data)))
		} else {
			err = binutil.Write[uint32](bw, uint32(len(data)))
		}
		if err != nil {
			return nil, fmt.Errorf("frame %s: %w", f.ID(), err)
		}
		if err := binutil.Write[uint16](bw, 0); err != nil {
			return nil, err
		}
		if err := bw.WriteBytes(data); err != nil {
			return nil, err
		}
	}

	size := int(bw.Offset())
	pad := 0
	if padding {
		pad = paddingFor(headerSize + size)
	}

	var out bytes.Buffer
	sw := binutil.NewSafeWriter(&out)
	if err := sw.WriteBytes([]byte{'I', 'D', '3', major, 0, 0}); err != nil {
		return nil, err
	}
	if err := sw.WriteSynchsafe(uint32(size + pad)); err != nil {
		return nil, fmt.Errorf("tag size: %w", err)
	}
	if err := sw.WriteBytes(body.Bytes()); err != nil {
		return nil, err
	}
	if err := sw.WriteZeros(pad); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// paddingFor returns the free space that rounds n up to the next padding
// block. It is never zero.
func paddingFor(n int) int {
	return paddingBlock - n%paddingBlock
}
