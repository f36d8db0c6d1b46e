package newsportal

//go:generate colgen -imports=github.com/daniilsolovey/news-cms/internal/db
//colgen:News,Tag,Category,Image,ContentBlock
//colgen:News:Map(db),UniqueTagIDs
//colgen:Category:Map(db),Index(ID)
//colgen:Tag:Map(db),Index(ID)
//colgen:Image:Map(db)
//colgen:ContentBlock:Map(db)

func (ll NewsList) SetTags(tags Tags) {
	tagIndex := tags.IndexByID()
	for i := range ll {
		ll[i].Tags = make([]Tag, 0, len(ll[i].TagIDs))
		for _, tagID := range ll[i].TagIDs {
			if tag, ok := tagIndex[tagID]; ok {
				ll[i].Tags = append(ll[i].Tags, tag)
			}
		}
	}
}

func (ll NewsList) SetCategories(categories Categories) {
	categoryIndex := categories.IndexByID()
	for i := range ll {
		ll[i].Category = nil
		if ll[i].CategoryID == nil {
			continue
		}
		if category, ok := categoryIndex[*ll[i].CategoryID]; ok {
			ll[i].Category = &category
		}
	}
}

func (ll NewsList) UniqueCategoryIDs() []int {
	idx := make(map[int]struct{})
	var r []int
	for _, n := range ll {
		if n.CategoryID == nil {
			continue
		}
		if _, ok := idx[*n.CategoryID]; !ok {
			idx[*n.CategoryID] = struct{}{}
			r = append(r, *n.CategoryID)
		}
	}
	return r
}

func (ll NewsList) IDs() []int {
	r := make([]int, len(ll))
	for i := range ll {
		r[i] = ll[i].ID
	}
	return r
}

func (ll NewsList) Translate(language, fallback string) {
	for i := range ll {
		ll[i].Translate(language, fallback)
	}
}

func (ll Categories) Translate(language, fallback string) {
	for i := range ll {
		ll[i].Translate(language, fallback)
	}
}

func (ll Tags) Translate(language, fallback string) {
	for i := range ll {
		ll[i].Translate(language, fallback)
	}
}
