// Package testutil provides fixtures shared by tests across packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleContent is a small content tree covering every collection.
var SampleContent = map[string]string{
	"posts/hello-world.yaml": `title: Hello, world
summary: First post.
date: 2024-01-10
tags: [Go, meta]
body: Welcome.
`,
	"posts/ttl-caches.yaml": `title: Memoizing loads with a TTL cache
summary: Caching content loads.
date: 2024-03-02
tags: [go, Caching]
`,
	"posts/draft.yaml": `title: Unfinished
date: 2024-04-01
draft: true
tags: [meta]
`,
	"notes/cafe.yaml": `title: Café notes
summary: Naïve résumé parsing
date: 2023-08-15
tags: [misc]
`,
	"projects/portfolio.yaml": `title: Portfolio service
summary: The API behind this site.
date: 2023-11-20
tags: [go, gin]
repository: https://github.com/guttosm/portfolio-service
`,
	"resume.yaml": `name: Someone
headline: Backend engineer
experience:
  - company: Acme
    role: Senior Engineer
    period:
      start: 2022-11
      end: present
  - company: Initech
    role: Engineer
    period:
      start: 2020-01
      end: 2022-10
education:
  - institution: State University
    degree: BSc Computer Science
    period:
      start: 2015-02
      end: 2019-12
`,
	"skills.yaml": `- name: Languages
  skills:
    - name: Go
      level: expert
`,
}

// WriteContent writes files (path relative to the root) into a temporary
// content directory and returns its path.
func WriteContent(t testing.TB, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return root
}
