package redis

const (
	// KeyPrefixNode is the prefix for node keys
	KeyPrefixNode = "corral:node:"
	// KeyPrefixChildren is the prefix for folder children lists
	KeyPrefixChildren = "corral:children:"
	// KeyRoots is the key for the ordered list of top-level container IDs
	KeyRoots = "corral:roots"
)

// NodeKey returns the Redis key for a node by ID
func NodeKey(id string) string {
	return KeyPrefixNode + id
}

// ChildrenKey returns the Redis key for a folder's ordered child ID list
func ChildrenKey(id string) string {
	return KeyPrefixChildren + id
}

// RootsKey returns the key for the ordered list of top-level container IDs
func RootsKey() string {
	return KeyRoots
}
