package rest

//go:generate colgen -imports=github.com/daniilsolovey/news-cms/internal/newsportal -funcpkg=newsportal
//colgen:NewsSummary,Tag,TagCount,Category,CategoryCount,Alternate,SearchResult
//colgen:NewsSummary:Map(newsportal.News)
//colgen:Tag:Map(newsportal)
//colgen:TagCount:Map(newsportal)
//colgen:Category:Map(newsportal)
//colgen:CategoryCount:Map(newsportal)
//colgen:Alternate:Map(newsportal)
//colgen:SearchResult:Map(search.Document)
