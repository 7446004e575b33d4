package report

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/ginjaninja78/inventory-manager/internal/catalog"
)

// xmlInventory is the root element of a Catalog export.
type xmlInventory struct {
	XMLName    xml.Name      `xml:"inventory"`
	Records    int           `xml:"records,attr"`
	Categories []xmlCategory `xml:"category"`
}

type xmlCategory struct {
	Name  string    `xml:"name,attr"`
	Count int       `xml:"count,attr"`
	Items []xmlItem `xml:"item"`
}

type xmlItem struct {
	ProductName string `xml:"product_name"`
	Quantity    string `xml:"quantity"`
	UnitPrice   string `xml:"unit_price"`
}

// WriteCatalogXML writes records grouped by category, categories in order
// of first appearance and items in Catalog order.
func WriteCatalogXML(w io.Writer, records []catalog.Record) error {
	doc := xmlInventory{Records: len(records)}
	index := make(map[string]int)

	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(doc.Categories)
			index[r.Category] = i
			doc.Categories = append(doc.Categories, xmlCategory{Name: r.Category})
		}
		doc.Categories[i].Count++
		doc.Categories[i].Items = append(doc.Categories[i].Items, xmlItem{
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode XML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// SaveCatalogXML writes the XML export to path, overwriting it.
func SaveCatalogXML(path string, records []catalog.Record) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteCatalogXML(w, records)
	})
}
