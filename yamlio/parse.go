// Package yamlio bridges YAML text and the ir document model. It is an
// adapter only: the conversion core in package convert never depends on
// it, and it does no typed conversion of its own beyond retyping scalar
// text for emission.
package yamlio

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/doctree/debug"
	"github.com/signadot/doctree/ir"
)

// Parse reads the first YAML document in d into a node tree. Scalar
// text is kept as written (radix prefixes, float forms), except that
// quoted strings carry their unescaped value. Anchors, aliases, merge
// keys, and directives are the document layer's business and are
// rejected here.
func Parse(d []byte) (*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return ir.Null(), nil
	}
	node, err := fromAST(f.Docs[0].Body)
	if err != nil {
		return nil, err
	}
	if debug.YAML() {
		debug.Logf("yamlio: parsed %v\n", node)
	}
	return node, nil
}

func fromAST(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return ir.FromString(n.GetToken().Value), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		return ir.FromString(x.Value.Value), nil
	case *ast.SequenceNode:
		res := ir.New(ir.SequenceType)
		for _, v := range x.Values {
			child, err := fromAST(v)
			if err != nil {
				return nil, err
			}
			res.PushBack(child)
		}
		return res, nil
	case *ast.MappingNode:
		res := ir.New(ir.MapType)
		for _, kv := range x.Values {
			if err := pairFromAST(res, kv); err != nil {
				return nil, err
			}
		}
		return res, nil
	case *ast.MappingValueNode:
		// a single-pair mapping parses to the pair itself
		res := ir.New(ir.MapType)
		if err := pairFromAST(res, x); err != nil {
			return nil, err
		}
		return res, nil
	case *ast.MappingKeyNode:
		return fromAST(x.Value)
	case *ast.TagNode:
		return fromAST(x.Value)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, n.Type())
	}
}

func pairFromAST(res *ir.Node, kv *ast.MappingValueNode) error {
	key, err := fromAST(kv.Key)
	if err != nil {
		return err
	}
	val, err := fromAST(kv.Value)
	if err != nil {
		return err
	}
	res.ForceInsert(key, val)
	return nil
}
