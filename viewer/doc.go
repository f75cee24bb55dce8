// Package viewer provides a Bubble Tea component that shows a byte slice as a
// paginated hex grid, backed by the page package.
//
// The package owns input handling, layout, rendering, the scrollbar, async
// file loading, and host integration hooks (change and load events). All
// addressing rules live in page.Model.
package viewer
