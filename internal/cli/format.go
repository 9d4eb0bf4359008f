package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	// Color functions - fatih/color disables itself when output is not a TTY
	errorColor  = color.New(color.FgRed, color.Bold)
	infoColor   = color.New(color.FgCyan)
	headerColor = color.New(color.FgBlue, color.Bold)
	labelColor  = color.New(color.FgWhite, color.Bold)
	valueColor  = color.New(color.FgHiBlack)
)

// PrintSection prints a section header
func PrintSection(title string) {
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintSubsection prints a subsection header
func PrintSubsection(title string) {
	_, _ = infoColor.Printf("  %s\n", title)
}

// PrintError prints an error message to stderr
func PrintError(msg string) {
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	fmt.Println(msg)
}

// PrintLabelValue prints a label-value pair with proper formatting
func PrintLabelValue(label, value string) {
	_, _ = labelColor.Printf("  %s: ", label)
	_, _ = valueColor.Println(value)
}

// PrintList prints a list of items with bullet points
func PrintList(items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Printf("%s• %s\n", indentStr, item)
	}
}

// PrintNumberedList prints a numbered list
func PrintNumberedList(items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for i, item := range items {
		_, _ = infoColor.Printf("%s%d. %s\n", indentStr, i+1, item)
	}
}
