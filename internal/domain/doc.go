// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/category), and the
// validation reporting contract lives in domain/validation. This root package
// holds the sentinel errors every layer matches against with errors.Is.
package domain
