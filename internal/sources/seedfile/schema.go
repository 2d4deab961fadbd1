package seedfile

// Entry is a single node in the seed YAML. An entry with an href is a
// bookmark; an entry without one is a folder and may carry children.
type Entry struct {
	Title    string  `yaml:"title"`
	Href     string  `yaml:"href"`
	Children []Entry `yaml:"children"`
}

// Config is the root structure of the seed file. Each top-level folder
// becomes a top-level container; the first one is the default container.
type Config struct {
	Folders []Entry `yaml:"folders"`
}
