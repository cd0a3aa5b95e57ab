// commentsv1 — контракт удалённого сервиса комментариев (LBRY comment API).
//
// Сообщения описаны обычными Go-структурами с JSON-тегами в форме comment API,
// а gRPC гоняет их через зарегистрированный JSON-кодек (content-subtype "json").
// Клиент и сервер этого модуля работают только через этот пакет.
package commentsv1

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
)

// CodecName — content-subtype, под которым зарегистрирован кодек.
const CodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// jsonCodec реализует encoding.Codec поверх encoding/json.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("commentsv1: marshal %T: %w", v, err)
	}

	return b, nil
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("commentsv1: unmarshal %T: %w", v, err)
	}

	return nil
}

func (jsonCodec) Name() string { return CodecName }
