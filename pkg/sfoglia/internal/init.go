// Package internal contains the infrastructure under the sfoglia
// navigation stack: SDL window and input plumbing, fonts, theming, text
// rendering, and logging. Types and functions in this package are not
// part of the public API.
package internal

import _ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
