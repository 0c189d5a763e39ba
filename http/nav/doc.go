/*
Package nav provides navigators for fetch.Client.

A [*History] tracks the page a browser-like host displays,
resolving every navigation through a router.Table.
A [*Static] stays on one path and records where it was asked to go,
which suits command line tools and tests.
*/
package nav
