/*
Package vault encrypts user-chosen secrets for sites whose password can't be generated.
This trades away the stateless property of generated passwords for the sites it's used with, so it's opted into per site.

# How it works:

A 32 byte storage key is derived from the MasterKey and the site name, in a scope reserved for storage.
The secret is padded to at least 20 bytes so short secrets don't reveal their length, then sealed with ChaCha20-Poly1305 under a fresh random nonce.
The site name is authenticated along with the ciphertext, so a sealed secret can't be moved to another site.

Decrypt verifies the authentication tag before anything else.
A wrong master password, a corrupted entry, and tampering all fail with ErrAuthenticationFailed, and no plaintext is returned.

A Bundle holds the nonce and ciphertext together, and encodes to a base64 string suitable for a configuration document.
*/
package vault
