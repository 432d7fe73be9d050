// Package pages строит каждый маршрут публичного сайта как отсоединенный DOM-фрагмент,
// настраивает для него head документа и подключает поведение после монтирования.
package pages

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/net/html"

	"github.com/Abdalkaderdev/Realhouse-sub003/internal/dom"
	"github.com/Abdalkaderdev/Realhouse-sub003/internal/seo"
)

// ErrNotMounted: Bind вызван для узла, не присоединенного к документу
var ErrNotMounted = errors.New("pages: bind called on a detached node")

// Page: контроллер маршрута. Фазы идут по порядку: Build строит отсоединенный
// фрагмент, SetupSEO обновляет head, документ монтирует фрагмент в <main>,
// Bind подключает поведение, которому нужно присоединенное дерево.
type Page interface {
	Build(ctx context.Context) (*dom.Fragment, error)
	SetupSEO(doc *seo.Document) error
	Bind(main *html.Node) error
}

// StatusPage реализуют страницы, у которых исход Build меняет HTTP-статус
type StatusPage interface {
	Status() int
}

// Render прогоняет все фазы p на doc и возвращает HTTP-статус ответа
func Render(ctx context.Context, doc *seo.Document, p Page) (int, error) {
	frag, err := p.Build(ctx)
	if err != nil {
		return http.StatusInternalServerError, fmt.Errorf("build: %w", err)
	}
	doc.ClearDynamicSchemas()
	if err := p.SetupSEO(doc); err != nil {
		return http.StatusInternalServerError, fmt.Errorf("setup seo: %w", err)
	}
	main := doc.Mount(frag)
	if err := p.Bind(main); err != nil {
		return http.StatusInternalServerError, fmt.Errorf("bind: %w", err)
	}
	status := http.StatusOK
	if sp, ok := p.(StatusPage); ok && sp.Status() != 0 {
		status = sp.Status()
	}
	return status, nil
}

// requireMounted проверяет, что n висит на узле документа
func requireMounted(n *html.Node) error {
	for p := n; p != nil; p = p.Parent {
		if p.Type == html.DocumentNode {
			return nil
		}
	}
	return ErrNotMounted
}

// status встраивает изменяемый HTTP-статус в контроллеры страниц
type status struct {
	code int
}

func (s *status) Status() int { return s.code }

// noBind для страниц без поведения после монтирования
type noBind struct{}

func (noBind) Bind(main *html.Node) error { return requireMounted(main) }
