// model/neo4j/style/colors.go
package style

// DefaultDepartmentColor is used for synthesized departments.
const DefaultDepartmentColor = "#6B7280" // Gray

// DepartmentPalette is cycled through when a department is created without a color.
var DepartmentPalette = []string{
	"#3B82F6", // Blue
	"#10B981", // Green
	"#F59E0B", // Amber
	"#EF4444", // Red
	"#8B5CF6", // Violet
	"#EC4899", // Pink
	"#14B8A6", // Teal
}

// PaletteColor picks a palette entry for the n-th department.
func PaletteColor(n int) string {
	if n < 0 {
		n = -n
	}
	return DepartmentPalette[n%len(DepartmentPalette)]
}
