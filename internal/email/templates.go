package email

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
)

// TemplateMeetingRequest - письмо получателю запроса на встречу
const TemplateMeetingRequest = "meeting_request"

//go:embed templates/*.html
var builtinTemplates embed.FS

// TemplateManager хранит html шаблоны писем по имени файла без расширения.
// Встроенные шаблоны можно переопределить файлами из каталога.
type TemplateManager struct {
	mu  sync.RWMutex
	set map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{set: make(map[string]*template.Template)}
	if err := tm.load(builtinTemplates, "templates"); err != nil {
		return nil, fmt.Errorf("builtin email templates: %w", err)
	}
	return tm, nil
}

// LoadTemplates читает *.html из dirPath; одноименные шаблоны заменяются
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return tm.load(os.DirFS(dirPath), ".")
}

func (tm *TemplateManager) load(fsys fs.FS, root string) error {
	parsed := make(map[string]*template.Template)
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".html" {
			return err
		}
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ".html")
		tpl, err := template.New(name).Parse(string(src))
		if err != nil {
			return fmt.Errorf("parse %s: %w", p, err)
		}
		parsed[name] = tpl
		return nil
	})
	if err != nil {
		return err
	}

	tm.mu.Lock()
	for name, tpl := range parsed {
		tm.set[name] = tpl
	}
	tm.mu.Unlock()
	return nil
}

func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	tm.mu.RLock()
	tpl, ok := tm.set[name]
	tm.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("email template %q not found", name)
	}

	var sb strings.Builder
	if err := tpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return sb.String(), nil
}

func (tm *TemplateManager) TemplateNames() []string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	names := make([]string, 0, len(tm.set))
	for name := range tm.set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
