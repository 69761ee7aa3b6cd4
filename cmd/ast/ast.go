package main

import (
	"flag"
	"fmt"
	"go/format"
	"io/ioutil"
	"log"
	"os"
	"strings"
)

//go:generate go run . -type Expr -out ../../internal/expr.go
//go:generate go run . -type Stmt -out ../../internal/stmt.go

var nodes = map[string][]string{
	"Stmt": {
		"Expr: expression expr",
		"Print: keyword *token, expression expr",
		"Var: name *token, initializer expr",
		"Block: stmts []stmt",
		"While: keyword *token, condition expr, body stmt",
		"Return: keyword *token, value expr",
		"If: keyword *token, condition expr, thenBranch stmt, elseBranch stmt",
		"Fn: name *token, params []*token, body []stmt",
	},
	"Expr": {
		"Assign: name *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Call: callee expr, paren *token, arguments []expr",
		"Grouping: expression expr",
		"Literal: value interface{}",
		"Logical: left expr, operator *token, right expr",
		"Unary: operator *token, right expr",
		"Variable: name *token",
	},
}

func main() {
	baseName := flag.String("type", "", "node family to generate: Expr or Stmt")
	outPath := flag.String("out", "", "output file, stdout when empty")
	flag.Parse()

	types, ok := nodes[*baseName]
	if !ok {
		fmt.Fprintln(os.Stderr, "Usage: ast -type Expr|Stmt [-out file.go]")
		os.Exit(2)
	}

	src, err := format.Source([]byte(generateAst(*baseName, types)))
	if err != nil {
		log.Fatal(err)
	}

	if *outPath == "" {
		fmt.Print(string(src))
		return
	}
	if err := ioutil.WriteFile(*outPath, src, 0644); err != nil {
		log.Fatal(err)
	}
}

func generateAst(baseName string, types []string) string {
	lower := strings.ToLower(baseName)
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + lower + " interface {\n"
	out += "\taccept(" + lower + "Visitor) (R, error)\n"
	if baseName == "Expr" {
		out += "\tnodeID() int\n"
	}
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", lower)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + lower + " *" + structType + ") (R, error)\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	if baseName == "Expr" {
		out += "\tid int\n"
	}
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) (R, error) {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	if baseName == "Expr" {
		out += "func (s *" + structName + ") nodeID() int {\n"
		out += "\treturn s.id\n"
		out += "}\n\n"
	}
	// End Method Definition

	return out
}
