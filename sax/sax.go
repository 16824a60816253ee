package sax

func New() *SAX2 {
	return &SAX2{}
}

func (s *SAX2) StartDocument(ctx Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX2) EndDocument(ctx Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return nil
}

func (s *SAX2) Characters(ctx Context, content []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, content)
	}
	return nil
}

func (s *SAX2) Element(ctx Context, elem ParsedElement) error {
	if h := s.ElementHandler; h != nil {
		return h(ctx, elem)
	}
	return nil
}

func (s *SAX2) Recover(ctx Context, r Recovery) error {
	if h := s.RecoverHandler; h != nil {
		return h(ctx, r)
	}
	return nil
}

func (k RecoveryKind) String() string {
	switch k {
	case MalformedName:
		return "MalformedName"
	case MalformedSelfClose:
		return "MalformedSelfClose"
	case MalformedClose:
		return "MalformedClose"
	case MismatchedClose:
		return "MismatchedClose"
	case Unterminated:
		return "Unterminated"
	}
	return "RecoveryKind(unknown)"
}
