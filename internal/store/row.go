package store

import (
	"pricesync/internal/provider"
	"pricesync/internal/store/notion"
)

// Row is one tracked asset record.
type Row struct {
	ID         string
	Properties map[string]notion.Property
}

func rowFromPage(p notion.Page) Row {
	return Row{ID: p.ID, Properties: p.Properties}
}

// Title returns the text of the first item of a title property.
// It reports false when the property, its item list or the text is missing.
func (r Row) Title(prop string) (string, bool) {
	p, ok := r.Properties[prop]
	if !ok || len(p.Title) == 0 {
		return "", false
	}
	first := p.Title[0]
	if first.Text != nil && first.Text.Content != "" {
		return first.Text.Content, true
	}
	if first.PlainText != "" {
		return first.PlainText, true
	}
	return "", false
}

// SelectName returns the selected option's name of a select property.
func (r Row) SelectName(prop string) (string, bool) {
	p, ok := r.Properties[prop]
	if !ok || p.Select == nil || p.Select.Name == "" {
		return "", false
	}
	return p.Select.Name, true
}

// PropertyNames names the properties an asset is read from.
type PropertyNames struct {
	Name string
	Type string
}

// AssetFromRow builds the quote request tuple for a row. The name doubles
// as the ticker symbol and is used verbatim.
func AssetFromRow(r Row, props PropertyNames) provider.Asset {
	name, _ := r.Title(props.Name)
	class, _ := r.SelectName(props.Type)
	return provider.Asset{
		Name:   name,
		Symbol: name,
		Class:  provider.ParseAssetClass(class),
	}
}
