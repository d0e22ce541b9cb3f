package core

import (
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Keyword Matching Benchmarks
// ============================================================================

// BenchmarkNewKeywordSet benchmarks keyword compilation.
// A fresh set is built on every request, so compilation cost is paid per
// keystroke in the UI.
func BenchmarkNewKeywordSet(b *testing.B) {
	keywords := []string{"shiny", " r | r$", "machine learning|deep learning"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NewKeywordSet(keywords)
	}
}

// BenchmarkKeywordSet_Match benchmarks a single-keyword match.
func BenchmarkKeywordSet_Match(b *testing.B) {
	set := NewKeywordSet([]string{"shiny"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Match("Scaling Shiny Apps in Production")
	}
}

// BenchmarkKeywordSet_Match_Anchored benchmarks the anchored standalone-R
// pattern, the most expensive of the fixed choices.
func BenchmarkKeywordSet_Match_Anchored(b *testing.B) {
	set := NewKeywordSet([]string{" r | r$"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Match("Reproducible Machine Learning Pipelines in R")
	}
}

// BenchmarkKeywordSet_Match_Conjunction benchmarks a three-keyword set
// where every pattern has to run.
func BenchmarkKeywordSet_Match_Conjunction(b *testing.B) {
	set := NewKeywordSet([]string{"shiny", "production", "apps"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Match("Scaling Shiny Apps in Production")
	}
}

// BenchmarkKeywordSet_Mask benchmarks masking a full title column.
func BenchmarkKeywordSet_Mask(b *testing.B) {
	talks := generateTalks(1000)
	titles := make([]string, len(talks))
	for i, t := range talks {
		titles[i] = t.Title
	}
	set := NewKeywordSet([]string{"shiny"})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Mask(titles)
	}
}

// ============================================================================
// Filter Engine Benchmarks
// ============================================================================

// BenchmarkFilterSessions benchmarks the sessions engine on a
// conference-sized table. Every control change re-evaluates the whole
// view, so this is the hottest path in the application.
func BenchmarkFilterSessions(b *testing.B) {
	sessions := generateSessions(500)
	sel := SessionSelections{
		Days:     []string{"Fri", "Sat"},
		Lo:       7,
		Hi:       23,
		Keywords: []string{"shiny"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FilterSessions(sessions, sel)
	}
}

// BenchmarkFilterSessions_AllPredicates benchmarks a selection that
// exercises every predicate at once.
func BenchmarkFilterSessions_AllPredicates(b *testing.B) {
	sessions := generateSessions(500)
	sel := SessionSelections{
		Days:       []string{"Fri", "Sat", "Sun"},
		Lo:         8.5,
		Hi:         18,
		Sponsors:   []string{"RStudio", "Appsilon"},
		Types:      []string{"Workshop", "Invited Keynote"},
		Keywords:   []string{"shiny", "apps"},
		ExcludeFee: true,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FilterSessions(sessions, sel)
	}
}

// BenchmarkFilterSessions_Comparison compares engine cost across table
// sizes well beyond any real conference program.
func BenchmarkFilterSessions_Comparison(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	sel := SessionSelections{Days: DayCodes(), Lo: 0, Hi: 24, Keywords: []string{"shiny"}}

	for _, size := range sizes {
		sessions := generateSessions(size)
		b.Run(fmt.Sprintf("%d_rows", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				FilterSessions(sessions, sel)
			}
		})
	}
}

// BenchmarkFilterTalks benchmarks the talks engine with a fixed-choice
// pattern plus a free-text keyword.
func BenchmarkFilterTalks(b *testing.B) {
	talks := generateTalks(1000)
	sel := TalkSelections{Topics: []string{"r", "ml"}, Keywords: []string{"pipelines"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FilterTalks(talks, sel)
	}
}

// ============================================================================
// Facet Extraction Benchmarks
// ============================================================================

// BenchmarkSponsorFacet benchmarks sponsor cell splitting and dedup.
// Runs once at startup, but on the whole table.
func BenchmarkSponsorFacet(b *testing.B) {
	sessions := generateSessions(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SponsorFacet(sessions)
	}
}

// BenchmarkTypeFacet benchmarks type bucketing and ordering.
func BenchmarkTypeFacet(b *testing.B) {
	sessions := generateSessions(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TypeFacet(sessions)
	}
}

// BenchmarkExtractFacets benchmarks full facet derivation at startup.
func BenchmarkExtractFacets(b *testing.B) {
	sessions := generateSessions(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ExtractFacets(sessions)
	}
}

// ============================================================================
// Error Mapping Benchmarks
// ============================================================================

// BenchmarkMapError benchmarks pattern lookup for a known error.
func BenchmarkMapError(b *testing.B) {
	err := errors.New(`unknown day code "Xyz"`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MapError(err)
	}
}

// BenchmarkMapError_Unknown benchmarks the worst case: every pattern is
// tried before the fallback wins.
func BenchmarkMapError_Unknown(b *testing.B) {
	err := errors.New("some error no pattern recognizes")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		MapError(err)
	}
}

// ============================================================================
// Parallel Benchmarks
// ============================================================================

// BenchmarkFilterSessionsParallel benchmarks concurrent view evaluation.
// The snapshot is immutable and shared, so requests never contend.
func BenchmarkFilterSessionsParallel(b *testing.B) {
	sessions := generateSessions(500)
	sel := SessionSelections{Days: []string{"Fri", "Sat"}, Lo: 7, Hi: 23, Keywords: []string{"shiny"}}

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			FilterSessions(sessions, sel)
		}
	})
}

// BenchmarkFilterTalksParallel benchmarks concurrent talks evaluation.
func BenchmarkFilterTalksParallel(b *testing.B) {
	talks := generateTalks(1000)
	sel := TalkSelections{Topics: []string{"r"}}

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			FilterTalks(talks, sel)
		}
	})
}

// ============================================================================
// Memory Allocation Benchmarks
// ============================================================================

// BenchmarkFilterAllocs measures allocations on the per-request path.
func BenchmarkFilterAllocs(b *testing.B) {
	sessions := generateSessions(500)
	talks := generateTalks(1000)

	b.Run("FilterSessions", func(b *testing.B) {
		sel := SessionSelections{Days: []string{"Fri"}, Lo: 7, Hi: 23}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			FilterSessions(sessions, sel)
		}
	})

	b.Run("FilterTalks", func(b *testing.B) {
		sel := TalkSelections{Topics: []string{"shiny"}}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			FilterTalks(talks, sel)
		}
	})

	b.Run("NewKeywordSet", func(b *testing.B) {
		keywords := []string{"shiny", " r | r$"}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			NewKeywordSet(keywords)
		}
	})
}

// ============================================================================
// Helper Functions
// ============================================================================

var benchTitles = [6]string{
	"Scaling Shiny Apps in Production",
	"Tidy Evaluation in Depth",
	"Machine Learning Pipelines in R",
	"Reproducible Research Habits",
	"Data Visualisation at Scale",
	"Teaching Statistics with ggplot",
}

var benchSponsors = [4]string{
	"RStudio",
	"Oracle, RStudio",
	"Appsilon",
	"Microsoft, R Consortium",
}

var benchTypes = [5]string{
	"Invited Keynote",
	"Topic Panel",
	"Contributed Talk",
	"Workshop",
	"Other",
}

// generateSessions generates a sessions table with the specified number
// of rows, cycling through days, sponsors, types, and titles.
func generateSessions(rows int) []Session {
	days := DayCodes()
	sessions := make([]Session, rows)
	for i := 0; i < rows; i++ {
		beg := float64(8 + i%10)
		sessions[i] = Session{
			Day:      days[i%len(days)],
			Date:     "Jul 10",
			Time:     "9:00 AM",
			BegHour:  beg,
			EndHour:  beg + 1.5,
			Sponsor:  benchSponsors[i%len(benchSponsors)],
			Type:     benchTypes[i%len(benchTypes)],
			Title:    fmt.Sprintf("%s #%d", benchTitles[i%len(benchTitles)], i),
			Location: "Main Hall",
			URL:      fmt.Sprintf("https://example.org/s/%d", i),
			HasFee:   i%5 == 0,
		}
	}
	return sessions
}

// generateTalks generates a talks table with the specified number of rows.
func generateTalks(rows int) []Talk {
	talks := make([]Talk, rows)
	for i := 0; i < rows; i++ {
		talks[i] = Talk{
			Title:  fmt.Sprintf("%s #%d", benchTitles[i%len(benchTitles)], i),
			URL:    fmt.Sprintf("https://example.org/t/%d", i),
			HasFee: i%7 == 0,
		}
	}
	return talks
}
