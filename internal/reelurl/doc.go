// Package reelurl validates and canonicalizes Instagram reel URLs.
//
// A canonical URL has the form https://<host>/reel/<id> with no query or
// fragment. Canonicalize is pure and idempotent: feeding its output back in
// returns the same string.
package reelurl
