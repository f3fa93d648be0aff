package cli

import (
	"context"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"artistpages/internal/domain/pages"
	"artistpages/internal/service"
)

// ImportDraft runs one editor session: load, overlay the YAML document, and
// save if anything changed. It returns nil when the file changes nothing.
func ImportDraft(ctx context.Context, svc *service.PageService, email, pageID string, doc []byte) (*pages.Page, error) {
	loaded, err := svc.LoadDraft(ctx, email, pageID)
	if err != nil {
		return nil, err
	}
	session, err := pages.NewSession(loaded)
	if err != nil {
		return nil, err
	}

	next, err := session.Working()
	if err != nil {
		return nil, err
	}
	// decoding over the loaded draft only replaces keys present in doc
	if err := yaml.Unmarshal(doc, &next); err != nil {
		return nil, errors.Wrap(err, "parse page file")
	}
	next.ID = loaded.ID
	session.Edit(func(d *pages.Draft) { *d = next })

	if !session.Dirty() {
		return nil, nil
	}
	payload, err := session.Payload()
	if err != nil {
		return nil, err
	}
	page, err := svc.Save(ctx, email, payload)
	if err != nil {
		return nil, err
	}
	d, err := pages.FromPage(*page)
	if err != nil {
		return nil, err
	}
	if err := session.MarkSaved(d); err != nil {
		return nil, err
	}
	return page, nil
}
