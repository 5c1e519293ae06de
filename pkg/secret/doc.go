/*
Package secret provides a byte buffer type for sensitive material like master passwords, derived keys, and decrypted secrets.

Go gives no guarantee about when or whether memory is released or copied by the runtime, so wiping is a best effort.
What this package does guarantee is that every Buffer passed through Use is overwritten with zeros before Use returns, on every exit path.

# General guidelines:
  - Acquire a Buffer as late as possible, and defer its Wipe immediately after acquiring it.
  - Prefer Use for short-lived material, since it wipes on error returns and panics alike.
  - Avoid converting a Buffer to a string. Strings are immutable and can't be wiped.
*/
package secret
