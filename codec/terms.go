package codec

import (
	"fmt"

	"github.com/knakk/rdf"

	"github.com/c360studio/entityloader/graph"
)

func fromTriple(tr rdf.Triple) (graph.Statement, error) {
	subj, err := fromTerm(tr.Subj)
	if err != nil {
		return graph.Statement{}, fmt.Errorf("subject: %w", err)
	}
	pred, err := fromTerm(tr.Pred)
	if err != nil {
		return graph.Statement{}, fmt.Errorf("predicate: %w", err)
	}
	obj, err := fromTerm(tr.Obj)
	if err != nil {
		return graph.Statement{}, fmt.Errorf("object: %w", err)
	}
	return graph.NewStatement(subj, pred, obj)
}

func fromTerm(t rdf.Term) (graph.Term, error) {
	switch v := t.(type) {
	case rdf.IRI:
		return graph.IRI(v.String()), nil
	case rdf.Blank:
		return graph.Blank(v.String()), nil
	case rdf.Literal:
		if lang := v.Lang(); lang != "" {
			return graph.LangLiteral(v.String(), lang), nil
		}
		return graph.TypedLiteral(v.String(), v.DataType.String()), nil
	default:
		return graph.Term{}, fmt.Errorf("unsupported term %T", t)
	}
}

func toTriple(s graph.Statement) (rdf.Triple, error) {
	subj, err := toTerm(s.Subject)
	if err != nil {
		return rdf.Triple{}, err
	}
	pred, err := toTerm(s.Predicate)
	if err != nil {
		return rdf.Triple{}, err
	}
	obj, err := toTerm(s.Object)
	if err != nil {
		return rdf.Triple{}, err
	}

	rs, ok := subj.(rdf.Subject)
	if !ok {
		return rdf.Triple{}, fmt.Errorf("term %s cannot be a subject", s.Subject)
	}
	rp, ok := pred.(rdf.Predicate)
	if !ok {
		return rdf.Triple{}, fmt.Errorf("term %s cannot be a predicate", s.Predicate)
	}
	ro, ok := obj.(rdf.Object)
	if !ok {
		return rdf.Triple{}, fmt.Errorf("term %s cannot be an object", s.Object)
	}
	return rdf.Triple{Subj: rs, Pred: rp, Obj: ro}, nil
}

func toTerm(t graph.Term) (rdf.Term, error) {
	switch t.Kind {
	case graph.KindIRI:
		iri, err := rdf.NewIRI(t.Value)
		if err != nil {
			return nil, fmt.Errorf("iri %q: %w", t.Value, err)
		}
		return iri, nil
	case graph.KindBlank:
		blank, err := rdf.NewBlank(t.Value)
		if err != nil {
			return nil, fmt.Errorf("blank node %q: %w", t.Value, err)
		}
		return blank, nil
	case graph.KindLiteral:
		if t.Lang != "" {
			lit, err := rdf.NewLangLiteral(t.Value, t.Lang)
			if err != nil {
				return nil, fmt.Errorf("literal %q: %w", t.Value, err)
			}
			return lit, nil
		}
		datatype := t.Datatype
		if datatype == "" {
			datatype = graph.XSDString
		}
		dt, err := rdf.NewIRI(datatype)
		if err != nil {
			return nil, fmt.Errorf("datatype %q: %w", datatype, err)
		}
		return rdf.NewTypedLiteral(t.Value, dt), nil
	default:
		return nil, fmt.Errorf("wildcard term cannot be serialized")
	}
}
