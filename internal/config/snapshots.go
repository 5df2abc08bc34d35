package config

// SnapshotConfig locates recorded payloads for the snapshot provider.
type SnapshotConfig struct {
	Dir string `env:"SNAPSHOT_DIR" envDefault:"data/snapshots"`
}
