// Package ascii provides the ASCII art logo shown next to the report.
// Logos are color-coded using ANSI escape sequences for terminal display.
package ascii

import "github.com/fatih/color"

// GetLogo returns the Tux logo.
//
// Returns:
//   - A slice of strings, where each string represents one line of ASCII art
//
// The body is drawn in white, the beak and feet in yellow. Colors are dropped
// when output is not a terminal.
func GetLogo() []string {
	w := color.New(color.FgWhite, color.Bold).SprintFunc()
	y := color.New(color.FgYellow).SprintFunc()

	return []string{
		w("        #####"),
		w("       #######"),
		w("       ##") + "O" + w("#") + "O" + w("##"),
		w("       #") + y("#####") + w("#"),
		w("     ##") + y("##") + w("###") + y("##") + w("##"),
		w("    #") + y("##########") + w("##"),
		w("   #") + y("############") + w("##"),
		w("   #") + y("############") + w("###"),
		y("  ##") + w("#") + y("###########") + w("##") + y("#"),
		y("######") + w("#") + y("#######") + w("#") + y("######"),
		y("#######") + w("#") + y("#####") + w("#") + y("#######"),
		y("  #####") + w("#######") + y("#####"),
	}
}
