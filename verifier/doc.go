// Package verifier implements crypto.Verifier for the supported chain
// families.
//
// Inputs arrive as strings in the encodings wallets hand out:
//
//	            public key           signature     message
//	Cosmos      base64 (SEC1)        hex (R||S)    raw bytes
//	Ethereum    hex, 64 byte point   hex (R||S||V) raw bytes
//
// Both encodings can be overridden per field through the chain's config.
// Messages must already be in their signed form; nothing here canonicalizes
// JSON or adds framing unless configured to.
//
// Verifiers hold only immutable configuration and may be shared between
// goroutines.
package verifier
