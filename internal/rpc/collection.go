package rpc

//go:generate colgen -imports=github.com/daniilsolovey/news-cms/internal/newsportal -funcpkg=newsportal
//colgen:NewsSummary,Tag,Category,Image,Translation,ContentBlock,SearchResult
//colgen:NewsSummary:Map(newsportal.News)
//colgen:Category:Map(newsportal),Index(CategoryID)
//colgen:Tag:Map(newsportal),Index(TagID)
//colgen:Image:Map(newsportal)
//colgen:Translation:Map(db.NewsTranslation)
//colgen:ContentBlock:Map(newsportal)
//colgen:SearchResult:Map(search.Document)
