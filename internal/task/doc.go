// Package task extracts Asana task references from commit message text.
//
// Three surface forms are recognized, case-insensitively: "#<digits>",
// "asana:<digits>", and "asana/<digits>". A fourth form accepts a bare
// 16-digit ID after an action word such as "fixes" or "closes". Repeated
// mentions of the same ID collapse to a single entry and results are
// returned in sorted order.
package task
