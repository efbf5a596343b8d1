package model

import (
	"github.com/bangohan/kondate/internal/errors"
)

// MethodGenerateContent is the catalog capability required for text generation.
const MethodGenerateContent = "generateContent"

// DefaultPriorities is the process-wide model preference list. Order defines
// preference; the earliest entry matching a capable model wins.
var DefaultPriorities = []string{
	"gemini-3-flash-preview",
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-pro-latest",
}

// Descriptor is a remotely-advertised model: its identifier and the
// generation methods it supports. It is an immutable snapshot of one catalog
// response entry.
type Descriptor struct {
	ID      string
	Methods []string
}

// Supports reports whether the descriptor advertises the given method.
func (d Descriptor) Supports(method string) bool {
	for _, m := range d.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// Capable filters a catalog to the descriptors that support content
// generation, preserving catalog order.
func Capable(catalog []Descriptor) []Descriptor {
	capable := make([]Descriptor, 0, len(catalog))
	for _, d := range catalog {
		if d.Supports(MethodGenerateContent) {
			capable = append(capable, d)
		}
	}
	return capable
}

// Select picks one usable model from the catalog.
//
// The earliest priorities entry matching a capable model's identifier wins,
// regardless of catalog order. When no priority matches, the first capable
// descriptor in catalog order is used. When nothing in the catalog supports
// content generation, a NO_CAPABLE_MODEL error is returned and the caller
// must not proceed to generation.
//
// Select is pure: the same catalog and priorities always yield the same
// result.
func Select(catalog []Descriptor, priorities []string) (string, error) {
	capable := Capable(catalog)
	if len(capable) == 0 {
		return "", errors.NewNoCapableModelError()
	}

	for _, priority := range priorities {
		for _, d := range capable {
			if d.ID == priority {
				return d.ID, nil
			}
		}
	}

	return capable[0].ID, nil
}
