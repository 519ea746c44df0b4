package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/template"
	"github.com/modelshape/modelshape/pkg/types"
)

// Result is one validation outcome ready for rendering.
type Result struct {
	Prefix    string
	Predictor types.PredictorType
	Mode      types.Mode
	KeyCount  int
	Err       error
}

// RenderResult renders a validation verdict in the given format.
func RenderResult(res Result, format Format) string {
	if res.Err == nil {
		return renderSuccess(res, format)
	}
	return renderFailure(res, format)
}

func renderSuccess(res Result, format Format) string {
	detail := fmt.Sprintf("(%d keys, %s/%s)", res.KeyCount, res.Predictor, res.Mode)
	if format == FormatText {
		return fmt.Sprintf("ok %s %s", res.Prefix, detail)
	}
	return fmt.Sprintf("%s %s %s",
		SuccessStyle.Render("✓ valid layout"),
		PathStyle.Render(res.Prefix),
		MutedStyle.Render(detail))
}

func renderFailure(res Result, format Format) string {
	code := errors.RootCode(res.Err)
	if format == FormatText {
		return fmt.Sprintf("error [%s] %s", code, res.Err.Error())
	}
	return fmt.Sprintf("%s %s %s",
		pterm.Error.Prefix.Text,
		pterm.Error.MessageStyle.Sprint(fmt.Sprintf("[%s]", code)),
		res.Err.Error())
}

// RenderModelList renders the model names discovered in directory mode.
func RenderModelList(names []string, format Format) string {
	if len(names) == 0 {
		return ""
	}
	if format == FormatText {
		return strings.Join(names, "\n") + "\n"
	}
	items := make([]pterm.BulletListItem, len(names))
	for i, name := range names {
		items[i] = pterm.BulletListItem{Level: 0, Text: name}
	}
	rendered, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return strings.Join(names, "\n") + "\n"
	}
	return rendered
}

// RenderTemplate renders a predictor's rule tree as an indented listing
// in token syntax, deterministic in authored edge order.
func RenderTemplate(pt types.PredictorType, root *template.Node, format Format) string {
	var b strings.Builder
	title := fmt.Sprintf("%s layout", pt)
	if format == FormatText {
		b.WriteString(title + "\n")
	} else {
		b.WriteString(TitleStyle.Render(title) + "\n")
	}
	renderNode(&b, root, 1, format)
	return b.String()
}

func renderNode(b *strings.Builder, n *template.Node, depth int, format Format) {
	indent := strings.Repeat("  ", depth)
	for _, e := range n.Edges {
		token := e.Key.String()
		if format != FormatText && e.Key.Kind() != template.KindGeneric {
			token = MutedStyle.Render(token)
		}
		if e.Sub == nil {
			b.WriteString(indent + token + "\n")
			continue
		}
		b.WriteString(indent + token + "/\n")
		renderNode(b, e.Sub, depth+1, format)
	}
}
