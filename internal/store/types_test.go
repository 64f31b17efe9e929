package store

import (
	"testing"

	"github.com/yxchen/macro-data/internal/asset"
)

func TestTypeCatalogCoversAssetClasses(t *testing.T) {
	byCode := make(map[string]TypeCatalogEntry)
	for _, entry := range Catalog() {
		if _, dup := byCode[entry.Code]; dup {
			t.Errorf("duplicate type code %q", entry.Code)
		}
		byCode[entry.Code] = entry
	}

	// Every class an asset can declare needs a catalog entry, or its
	// writes would be rejected with ErrUnknownType.
	for _, a := range asset.Catalog() {
		if _, ok := byCode[string(a.Class)]; !ok {
			t.Errorf("asset %s has class %s with no type catalog entry", a.Name, a.Class)
		}
	}

	valid := map[string]bool{"daily": true, "weekly": true, "monthly": true}
	for _, entry := range byCode {
		if !valid[entry.Frequency] {
			t.Errorf("type %s has unknown frequency %q", entry.Code, entry.Frequency)
		}
	}
}
