// Package fpat compiles friendly patterns, a shorthand dialect of regular
// expressions, and edits the text they match without losing track of
// positions.
//
// # Quick Start
//
// Shorthand is translated to standard syntax once and cached:
//
//	p := fpat.MustCompile(`/(year /d4) '-' /(month /d2)`)
//	p.Text() // (?<year>\d{4})-(?<month>\d{2})
//
//	r, err := p.Match("released 2024-06")
//	if err != nil {
//	    log.Fatal(err) // engine fault
//	}
//	if r == nil {
//	    return // no match
//	}
//	year := r.TextByName(0, "year")
//
// # Shorthand
//
// Whitespace between constructs is ignored. The main constructs are:
//
//	'text' "text"      literal text; / escapes the next character
//	/w /d /s /b ...    \w \d \s \b, uppercase negates
//	/alpha /digit ...  bracket expressions; -/digit negates
//	[ 'a'-'f' /d ]     character class; -[...] negates
//	{,;} -{,;}         run of the listed characters; - makes it a lazy negated run
//	3 2%5 %5 2%        {3} {2,5} {0,5} {2,}
//	/(name ... )       named group; /<name> refers back to it
//	@                  everything up to the end
//	/* text */         comment
//
// Prefixing a literal, class, run or @ with / wraps it in a capturing
// group.
//
// # Flags
//
// A pattern may end with "; " and flag letters: i or c (ignore case on or
// off), m or s (multiline on or off), f or u (shorthand on or off).
//
// # Editing
//
// A [MatchResult] reads and writes groups through an edit buffer keyed by
// the original offsets, so editing one group never moves another. Edits
// must address disjoint windows; [MatchResult.Render] produces the final
// text. [Pattern.Replace], [Pattern.ReplaceGroups] and
// [Pattern.ReplaceTemplate] wrap the common cases and report a
// [Replacement] whose Outcome tells no match, no change, replaced and
// fault apart.
//
// # Scraping
//
// [Source] and [SourceLines] are cursors over a text. A [Scraper] consumes
// a text piece by piece, storing captured groups as named variables;
// [Scraper.Push] and [Scraper.Pop] scrape a sub-match in a child scraper
// and merge its variables back.
//
// # Error Handling
//
// Absence is never an error: Match returns a nil result and scraper
// operations report false. Faults are returned as specific types:
//   - [CompileError]: shorthand that cannot be translated
//   - [MatchError]: the engine rejected or failed on the translated text
//   - [ReplaceError]: a replacement could not be applied, e.g. [ErrOverlap]
//
// Out-of-range match or group indexes and unknown group names panic.
//
// # Thread Safety
//
// [Env] and [Pattern] values are safe for concurrent use. Results,
// sources and scrapers belong to one goroutine.
package fpat
