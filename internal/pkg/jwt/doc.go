// Package jwt signs and verifies the HS512 access tokens accepted by the jwt
// session driver. Verification runs against an injected clock so expiry is
// deterministic under test.
package jwt
