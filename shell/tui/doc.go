// Package tui is a terminal shell for the fifteen puzzle built on tview.
//
// A title page leads to the board. Tiles are clicked with the mouse or slid
// with the arrow keys (hjkl also work). wasd moves a cursor over the board and
// Enter or space moves the tile under it; q or Esc quits. Once solved the
// restart button (or r) shuffles a new round.
package tui
