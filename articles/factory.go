package articles

// ViewDocumentFactory constructs empty, typed view documents from a logical
// type name. The variant set is closed; factories must return
// ErrUnknownViewType for anything else.
type ViewDocumentFactory func(t ViewDocumentType) (ViewDocument, error)

// NewViewDocument is the default factory over the built-in variant set.
func NewViewDocument(t ViewDocumentType) (ViewDocument, error) {
	switch t {
	case ViewDocumentTypeArticle:
		return &ArticleView{}, nil
	case ViewDocumentTypeArticlePage:
		return &PageView{}, nil
	default:
		return nil, ErrUnknownViewType
	}
}
