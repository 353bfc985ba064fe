package grade

// Column breakpoints and grade bands for Arts-style table layouts. The first
// breakpoint strictly greater than a position selects the band; positions at
// or beyond the last breakpoint fall into the high-school band. Assumes the
// fixed table geometry shared by all pages of that document family.
var (
	columnBreaks = []float64{180, 270, 345, 415, 485, 555, 625, 695, 765, 835}
	columnGrades = []string{
		"Grade PK", "Grade K", "Grade 1", "Grade 2", "Grade 3",
		"Grade 4", "Grade 5", "Grade 6", "Grade 7", "Grade 8", "HSI",
	}
)

// ColumnGrade maps a horizontal position to its grade band.
func ColumnGrade(left float64) string {
	for i, br := range columnBreaks {
		if left < br {
			return columnGrades[i]
		}
	}
	return columnGrades[len(columnGrades)-1]
}
