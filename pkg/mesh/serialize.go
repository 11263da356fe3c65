package mesh

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"

	"github.com/go-gl/mathgl/mgl32"
)

// Section stream errors.
var (
	ErrInvalidSectionMagic = errors.New("invalid section magic: expected 'RMSB'")
	ErrTruncatedSection    = errors.New("truncated section data")
)

// Stream format versions. A stream's version gates which fields are
// present. Versions newer than CurrentVersion are decoded by parsing
// the known field prefix and ignoring the remainder.
const (
	// VersionInitial streams carry no separate position buffer.
	VersionInitial uint32 = 1
	// VersionDualVertexBuffer streams prepend the position buffer.
	VersionDualVertexBuffer uint32 = 2

	CurrentVersion = VersionDualVertexBuffer
)

// sectionMagic identifies a serialized section stream.
const sectionMagic = "RMSB"

// EncodeSection serializes a section's persistent fields at
// CurrentVersion, without magic or version framing: position buffer,
// index buffer, bounding box, collision flag, visibility flag, update
// frequency. Attribute records and the tessellation list are runtime
// state and are not persisted.
func EncodeSection(s Section) []byte {
	var buf bytes.Buffer
	encodeSectionPayload(&buf, s)
	return buf.Bytes()
}

// DecodeSection decodes a bare section payload written at the given
// stream version into s. Buffer mode is not part of the stream; the
// caller picks the destination section's layout. The stored bounds are
// adopted from the stream, not recomputed.
func DecodeSection(data []byte, s Section, version uint32) error {
	return decodeSectionPayload(bytes.NewReader(data), s, version)
}

// EncodeSectionFile serializes a section with the RMSB magic and
// CurrentVersion framing.
func EncodeSectionFile(s Section) []byte {
	var buf bytes.Buffer
	buf.WriteString(sectionMagic)
	binary.Write(&buf, binary.LittleEndian, CurrentVersion)
	encodeSectionPayload(&buf, s)
	return buf.Bytes()
}

// ParseSectionFile decodes a magic-framed section stream into s and
// returns the stream's format version.
func ParseSectionFile(data []byte, s Section) (uint32, error) {
	if len(data) < 8 {
		return 0, ErrTruncatedSection
	}
	if string(data[:4]) != sectionMagic {
		return 0, ErrInvalidSectionMagic
	}

	version := binary.LittleEndian.Uint32(data[4:8])
	if err := decodeSectionPayload(bytes.NewReader(data[8:]), s, version); err != nil {
		return version, err
	}
	return version, nil
}

// WriteSectionFile writes a magic-framed section stream to path.
func WriteSectionFile(path string, s Section) error {
	return os.WriteFile(path, EncodeSectionFile(s), 0644)
}

// ReadSectionFile reads a magic-framed section stream from path into s
// and returns the stream's format version.
func ReadSectionFile(path string, s Section) (uint32, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return ParseSectionFile(data, s)
}

func encodeSectionPayload(buf *bytes.Buffer, s Section) {
	base := s.Base()

	writeVec3Slice(buf, base.positions)
	writeUint32Slice(buf, base.indices)
	writeBox(buf, base.bounds)
	writeBool(buf, base.CollisionEnabled)
	writeBool(buf, base.Visible)
	binary.Write(buf, binary.LittleEndian, int32(base.UpdateFrequency))
}

func decodeSectionPayload(r *bytes.Reader, s Section, version uint32) error {
	base := s.Base()

	// Position buffer (version >= dual vertex buffer only; older
	// streams have no field to skip).
	if version >= VersionDualVertexBuffer {
		positions, err := readVec3Slice(r)
		if err != nil {
			return err
		}
		base.positions = positions
	}

	indices, err := readUint32Slice(r)
	if err != nil {
		return err
	}
	base.indices = indices

	box, err := readBox(r)
	if err != nil {
		return err
	}
	base.bounds = box

	collision, err := readBool(r)
	if err != nil {
		return err
	}
	base.CollisionEnabled = collision

	visible, err := readBool(r)
	if err != nil {
		return err
	}
	base.Visible = visible

	var frequency int32
	if err := binary.Read(r, binary.LittleEndian, &frequency); err != nil {
		return ErrTruncatedSection
	}
	base.UpdateFrequency = UpdateFrequency(frequency)

	return nil
}

func writeVec3Slice(buf *bytes.Buffer, v []mgl32.Vec3) {
	binary.Write(buf, binary.LittleEndian, uint32(len(v)))
	binary.Write(buf, binary.LittleEndian, v)
}

func readVec3Slice(r *bytes.Reader) ([]mgl32.Vec3, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, ErrTruncatedSection
	}
	if int64(count)*12 > int64(r.Len()) {
		return nil, ErrTruncatedSection
	}

	out := make([]mgl32.Vec3, count)
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		return nil, ErrTruncatedSection
	}
	return out, nil
}

func writeUint32Slice(buf *bytes.Buffer, v []uint32) {
	binary.Write(buf, binary.LittleEndian, uint32(len(v)))
	binary.Write(buf, binary.LittleEndian, v)
}

func readUint32Slice(r *bytes.Reader) ([]uint32, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, ErrTruncatedSection
	}
	if int64(count)*4 > int64(r.Len()) {
		return nil, ErrTruncatedSection
	}

	out := make([]uint32, count)
	if err := binary.Read(r, binary.LittleEndian, out); err != nil {
		return nil, ErrTruncatedSection
	}
	return out, nil
}

// writeBox stores min, max, then a validity byte. Empty boxes are
// written as zeroed corners with validity 0 so the stream never holds
// infinities.
func writeBox(buf *bytes.Buffer, b Box) {
	valid := !b.IsEmpty()
	if !valid {
		b = Box{}
	}
	binary.Write(buf, binary.LittleEndian, b.Min)
	binary.Write(buf, binary.LittleEndian, b.Max)
	writeBool(buf, valid)
}

func readBox(r *bytes.Reader) (Box, error) {
	var box Box
	if err := binary.Read(r, binary.LittleEndian, &box.Min); err != nil {
		return Box{}, ErrTruncatedSection
	}
	if err := binary.Read(r, binary.LittleEndian, &box.Max); err != nil {
		return Box{}, ErrTruncatedSection
	}

	valid, err := readBool(r)
	if err != nil {
		return Box{}, ErrTruncatedSection
	}
	if !valid {
		return EmptyBox(), nil
	}
	return box, nil
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
		return
	}
	buf.WriteByte(0)
}

func readBool(r *bytes.Reader) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, ErrTruncatedSection
	}
	return b != 0, nil
}
