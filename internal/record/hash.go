package record

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content keys. The version suffix allows the record
// layout to change without colliding with old cache rows.
const (
	DomainType      = "gentype/type/v1"
	DomainRelation  = "gentype/relation/v1"
	DomainInference = "gentype/inference/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data) as hex.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// TypeKey is the content key of a type record.
func TypeKey(rec Object) (string, error) {
	canonical, err := MarshalCanonical(rec)
	if err != nil {
		return "", fmt.Errorf("TypeKey: %w", err)
	}
	return hashWithDomain(DomainType, canonical), nil
}

// RelationKey identifies one relational query. strict only matters for
// accepts; callers pass false for the other relations.
func RelationKey(relation, leftKey, rightKey string, strict bool) (string, error) {
	canonical, err := MarshalCanonical(Object{
		"relation": String(relation),
		"left":     String(leftKey),
		"right":    String(rightKey),
		"strict":   Bool(strict),
	})
	if err != nil {
		return "", fmt.Errorf("RelationKey: %w", err)
	}
	return hashWithDomain(DomainRelation, canonical), nil
}

// InferenceKey identifies the inference of a template against a received type.
func InferenceKey(templateKey, receivedKey string) (string, error) {
	canonical, err := MarshalCanonical(Object{
		"template": String(templateKey),
		"received": String(receivedKey),
	})
	if err != nil {
		return "", fmt.Errorf("InferenceKey: %w", err)
	}
	return hashWithDomain(DomainInference, canonical), nil
}

// MustTypeKey is like TypeKey but panics on error.
// Use only in tests or when the record is known to be valid.
func MustTypeKey(rec Object) string {
	key, err := TypeKey(rec)
	if err != nil {
		panic(err)
	}
	return key
}
