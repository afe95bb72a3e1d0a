// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements a retained tree of widgets.

A widget tree is laid out in two passes. UpdateSize computes the size
of every widget for an optional available size, then UpdatePos places
each widget inside the rectangle its parent gives it. Draw paints the
result with a paint.Canvas and a Theme.

Every widget embeds a Base holding its bounds, alignment, weight,
state and flags. Setters raise a change flag shared with the rest of
the tree, so a window learns about any change without walking it.
Containers such as LinearLayout and GridLayout address their children
by IndexPair, and a Path of index pairs addresses a widget from the
root of a window.

Events reach a widget through CallOn. The widget first runs its
default behavior, then passes the raw event and the default result
to the callback installed with SetOn. Work that must happen after the
current event, such as moving the focus, is pushed to a Queue as a
Command and performed by the application once dispatch completes.
*/
package widget
