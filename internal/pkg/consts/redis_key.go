package consts

const (
	SessionKey          = "session:"
	TaxonomyCategoryKey = "taxonomy:categories"
	TaxonomyTagKey      = "taxonomy:tags"
)
