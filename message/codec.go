package message

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/wfproxy/wfproxy-go/errors"
)

// nullLengthSentinelは、null値の文字列・添付バイナリを表す長さ値です。
const nullLengthSentinel = int32(-1)

// Serializeは、メッセージをバイナリへエンコードします。
//
// ignoreTypeCodeがtrueの場合、先頭のタイプコードを省略します。スキーマバージョンの
// 異なるピアとの相互運用のために使用します。
func Serialize(m Message, ignoreTypeCode bool) ([]byte, error) {
	base := m.Base()
	var buf bytes.Buffer

	if !ignoreTypeCode {
		if err := binary.Write(&buf, binary.LittleEndian, int32(base.GetType())); err != nil {
			return nil, errors.Errorf("failed to write type code: %w", err)
		}
	}

	if err := binary.Write(&buf, binary.LittleEndian, int32(base.PropertyCount())); err != nil {
		return nil, errors.Errorf("failed to write property count: %w", err)
	}
	for _, key := range base.PropertyKeys() {
		v, _ := base.GetProperty(key)
		writeString(&buf, &key)
		writeString(&buf, v)
	}

	if err := binary.Write(&buf, binary.LittleEndian, int32(base.AttachmentCount())); err != nil {
		return nil, errors.Errorf("failed to write attachment count: %w", err)
	}
	for _, attachment := range base.Attachments() {
		writeBytes(&buf, attachment)
	}

	return buf.Bytes(), nil
}

// Deserializeは、バイナリからメッセージをデコードします。
//
// ignoreTypeCodeがtrueの場合、タイプコードは読み込まずexpectedの先頭をタイプコードとして
// 使用します。expectedを指定した場合、デコードされたタイプコードがexpectedのいずれとも
// 一致しなければ errors.ErrMalformedMessage を返却します。
func Deserialize(r io.Reader, ignoreTypeCode bool, expected ...Type) (Message, error) {
	var tp Type
	if ignoreTypeCode {
		if len(expected) == 0 {
			return nil, errors.Errorf("expected type is required when the type code is ignored: %w", errors.ErrMalformedMessage)
		}
		tp = expected[0]
	} else {
		code, err := readInt32(r)
		if err != nil {
			return nil, errors.Errorf("failed to read type code: %w", errors.ErrMalformedMessage)
		}
		tp = Type(code)
		if len(expected) != 0 && !containsType(expected, tp) {
			return nil, errors.Errorf("unexpected message type %v: %w", tp, errors.ErrMalformedMessage)
		}
	}

	m := newMessage(tp)
	base := m.Base()

	propertyCount, err := readInt32(r)
	if err != nil {
		return nil, errors.Errorf("failed to read property count: %w", errors.ErrMalformedMessage)
	}
	if propertyCount < 0 {
		return nil, errors.Errorf("negative property count %d: %w", propertyCount, errors.ErrMalformedMessage)
	}
	for i := int32(0); i < propertyCount; i++ {
		key, err := readString(r)
		if err != nil {
			return nil, err
		}
		if key == nil {
			return nil, errors.Errorf("null property key: %w", errors.ErrMalformedMessage)
		}
		value, err := readString(r)
		if err != nil {
			return nil, err
		}
		base.SetProperty(*key, value)
	}

	attachmentCount, err := readInt32(r)
	if err != nil {
		return nil, errors.Errorf("failed to read attachment count: %w", errors.ErrMalformedMessage)
	}
	if attachmentCount < 0 {
		return nil, errors.Errorf("negative attachment count %d: %w", attachmentCount, errors.ErrMalformedMessage)
	}
	for i := int32(0); i < attachmentCount; i++ {
		attachment, err := readBytes(r)
		if err != nil {
			return nil, err
		}
		base.AppendAttachment(attachment)
	}

	return m, nil
}

func writeString(buf *bytes.Buffer, v *string) {
	if v == nil {
		binary.Write(buf, binary.LittleEndian, nullLengthSentinel) //nolint:errcheck
		return
	}
	bs := []byte(*v)
	binary.Write(buf, binary.LittleEndian, int32(len(bs))) //nolint:errcheck
	buf.Write(bs)
}

func writeBytes(buf *bytes.Buffer, bs []byte) {
	if bs == nil {
		binary.Write(buf, binary.LittleEndian, nullLengthSentinel) //nolint:errcheck
		return
	}
	binary.Write(buf, binary.LittleEndian, int32(len(bs))) //nolint:errcheck
	buf.Write(bs)
}

func readInt32(r io.Reader) (int32, error) {
	var v int32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}

func readString(r io.Reader) (*string, error) {
	bs, err := readBytes(r)
	if err != nil {
		return nil, err
	}
	if bs == nil {
		return nil, nil
	}
	s := string(bs)
	return &s, nil
}

func readBytes(r io.Reader) ([]byte, error) {
	length, err := readInt32(r)
	if err != nil {
		return nil, errors.Errorf("failed to read length prefix: %w", errors.ErrMalformedMessage)
	}
	if length == nullLengthSentinel {
		return nil, nil
	}
	if length < 0 {
		return nil, errors.Errorf("invalid length prefix %d: %w", length, errors.ErrMalformedMessage)
	}
	bs := make([]byte, int(length))
	if _, err := io.ReadFull(r, bs); err != nil {
		return nil, errors.Errorf("length prefix %d overruns the buffer: %w", length, errors.ErrMalformedMessage)
	}
	return bs, nil
}

func containsType(types []Type, tp Type) bool {
	for _, v := range types {
		if v == tp {
			return true
		}
	}
	return false
}
