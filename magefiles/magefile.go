//go:build mage

// Package main provides build targets for the flowtask project using Mage.
//
// Usage:
//
//	mage build          Compile the flowtask binary to bin/
//	mage install        Install flowtask to GOPATH/bin
//	mage test:all       Run every test
//	mage test:race      Run every test with the race detector
//	mage test:cover     Run every test and write bin/coverage.out
//	mage test:pkg dash  Run the tests of one internal package
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage stats          Print Go line counts per package as JSON
package main
