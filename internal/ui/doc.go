// Package ui contains the Bubble Tea program that renders a ribbon of strips
// and patches and turns key presses into ribbon commands.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses are looked up in the keymap and dispatched through the
//     command bus. Dispatch is synchronous, so each ribbon operation finishes
//     before the next message is handled.
//   - ctrl+p opens the command palette and ctrl+o the file finder. Both share
//     a filterable list (internal/ui/state.Level) and a text input.
//
// Documents load asynchronously. A load remembers the id of the patch that
// asked for it and is applied with Ribbon.SetContentFor when it completes.
// If that patch was closed in the meantime the document is released straight
// back to the content store.
package ui
