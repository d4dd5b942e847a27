package protoreg

import (
	"strings"

	"github.com/jhump/protoreflect/v2/protobuilder"
)

// comment turns a GraphQL description string into a proto leading comment,
// indenting every line by one space the way protoc-generated .proto files
// conventionally render doc comments. An empty description produces no
// comment at all rather than an empty leading-comment block.
func comment(description string) protobuilder.Comments {
	if description == "" {
		return protobuilder.Comments{}
	}

	lines := strings.Split(description, "\n")
	indented := make([]string, len(lines))
	for i, line := range lines {
		indented[i] = " " + line
	}
	return protobuilder.Comments{LeadingComment: strings.Join(indented, "\n") + "\n"}
}
