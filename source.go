package rtfm

import "strings"

// Source identifies a Sphinx documentation site that can be searched.
type Source struct {
	// Key is the canonical identifier used in commands.
	Key string

	// Name is the human-readable name of the documented project.
	Name string

	// URL is the root of the documentation site, without a trailing slash.
	// The object inventory is expected at URL + "/objects.inv".
	URL string

	// Aliases are alternative keys accepted by FindSource.
	Aliases []string
}

// sources is the registry of known documentation sites, in display order.
var sources = []Source{
	{Key: "discord.py", Name: "discord.py", URL: "https://discordpy.readthedocs.io/en/master", Aliases: []string{"dpy", "discordpy", "discord-py"}},
	{Key: "python", Name: "Python 3", URL: "https://docs.python.org/3", Aliases: []string{"py", "python3", "python-3", "py3"}},
	{Key: "pillow", Name: "Pillow", URL: "https://pillow.readthedocs.io/en/stable", Aliases: []string{"pil"}},
	{Key: "aiohttp", Name: "aiohttp", URL: "https://docs.aiohttp.org/en/stable", Aliases: []string{"ahttp"}},
	{Key: "asyncpg", Name: "asyncpg", URL: "https://magicstack.github.io/asyncpg/current", Aliases: []string{"apg"}},
	{Key: "wand", Name: "Wand", URL: "https://docs.wand-py.org/en/latest", Aliases: []string{"wand-py"}},
	{Key: "numpy", Name: "NumPy", URL: "https://numpy.org/doc/stable", Aliases: []string{"np"}},
	{Key: "sympy", Name: "SymPy", URL: "https://docs.sympy.org/latest"},
	{Key: "matplotlib", Name: "Matplotlib", URL: "https://matplotlib.org/stable", Aliases: []string{"mpl"}},
	{Key: "pygame", Name: "PyGame", URL: "https://www.pygame.org/docs"},
	{Key: "opencv", Name: "OpenCV", URL: "https://docs.opencv.org/2.4.13.7", Aliases: []string{"cv", "cv2", "opencv-python"}},
	{Key: "selenium", Name: "Selenium", URL: "https://selenium-python.readthedocs.io/en/latest", Aliases: []string{"selenium-python"}},
	{Key: "requests", Name: "Requests", URL: "https://docs.python-requests.org/en/master"},
}

// AllSources returns the registered documentation sources in display order.
// The returned slice is a copy; callers may modify it freely.
func AllSources() []Source {
	out := make([]Source, len(sources))
	copy(out, sources)
	return out
}

// FindSource resolves a user-supplied argument to a registered source by
// key or alias, case-insensitively. Returns ENOTFOUND listing the available
// keys when no source matches.
func FindSource(arg string) (Source, error) {
	arg = strings.ToLower(arg)

	for _, s := range sources {
		if s.Key == arg {
			return s, nil
		}
	}
	for _, s := range sources {
		for _, alias := range s.Aliases {
			if alias == arg {
				return s, nil
			}
		}
	}

	keys := make([]string, 0, len(sources))
	for _, s := range sources {
		keys = append(keys, s.Key)
	}
	return Source{}, Errorf(ENOTFOUND, "unknown documentation source %q (available: %s)", arg, strings.Join(keys, ", "))
}
