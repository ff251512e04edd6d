package indexer

import "github.com/goliatone/go-cms-search/articles"

// MapExcerpt is the default excerpt extension mapper. It is pure: the raw
// payload is read, never mutated. The locale parameter is part of the mapper
// contract so localized category/tag resolution can be layered on by hosts.
func MapExcerpt(raw map[string]any, _ string) *articles.ExcerptView {
	if raw == nil {
		return nil
	}
	return &articles.ExcerptView{
		Title:        stringValue(raw["title"]),
		More:         stringValue(raw["more"]),
		Description:  stringValue(raw["description"]),
		Categories:   int64List(raw["categories"]),
		Tags:         stringList(raw["tags"]),
		IconImageID:  firstMediaID(raw["icon"]),
		TitleImageID: firstMediaID(raw["images"]),
	}
}

// MapSeo is the default SEO extension mapper. Pure, no side effects.
func MapSeo(raw map[string]any) *articles.SeoView {
	if raw == nil {
		return nil
	}
	return &articles.SeoView{
		Title:         stringValue(raw["title"]),
		Description:   stringValue(raw["description"]),
		Keywords:      stringValue(raw["keywords"]),
		CanonicalURL:  stringValue(raw["canonicalUrl"]),
		NoIndex:       boolValue(raw["noIndex"]),
		NoFollow:      boolValue(raw["noFollow"]),
		HideInSitemap: boolValue(raw["hideInSitemap"]),
	}
}
