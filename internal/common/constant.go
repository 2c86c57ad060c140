// Package common contains the persisted key namespace and sentinel errors
// shared across larkstore components.
package common

// Persisted key namespace. These names are part of the on-disk contract and
// must stay stable across releases: installs, exports and backups written by
// earlier versions reference them.
const (
	// KeyEncryptionKey holds the vault's serialized key document.
	KeyEncryptionKey = "encryptionKey"

	// KeyStorageConfig holds the configuration aggregate.
	KeyStorageConfig = "storageConfig"

	// BackupKeyPrefix prefixes backup documents; the suffix is the creation
	// timestamp in unix milliseconds.
	BackupKeyPrefix = "backup_"
)

// SessionTokenHeaderName is the gRPC metadata key that carries the session
// token issued by Handshake.
const SessionTokenHeaderName = "session_token"
