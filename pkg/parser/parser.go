// Package parser builds Brewin ASTs from source text.
package parser

import (
	"fmt"
	"strings"

	"brewin/interpreter-go/pkg/ast"
	"brewin/interpreter-go/pkg/lexer"
)

// ParseProgram parses a complete Brewin program.
func ParseProgram(source string) (*ast.Program, error) {
	tokens, err := lexer.Scan(source)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	return p.parseProgram()
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func (p *parser) cur() lexer.Token { return p.tokens[p.pos] }

func (p *parser) advance() lexer.Token {
	t := p.tokens[p.pos]
	if t.Type != lexer.EOF {
		p.pos++
	}
	return t
}

func (p *parser) at(t lexer.TokenType) bool { return p.cur().Type == t }

func (p *parser) accept(t lexer.TokenType) bool {
	if p.at(t) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expect(t lexer.TokenType, what string) (lexer.Token, error) {
	if !p.at(t) {
		return lexer.Token{}, p.errorf("expected %s", what)
	}
	return p.advance(), nil
}

func (p *parser) errorf(format string, args ...interface{}) error {
	t := p.cur()
	where := fmt.Sprintf("%d:%d", t.Line, t.Col)
	if t.Type == lexer.EOF {
		return fmt.Errorf("parser: %s at %s (unexpected end of input)", fmt.Sprintf(format, args...), where)
	}
	return fmt.Errorf("parser: %s at %s (found %q)", fmt.Sprintf(format, args...), where, t.Lexeme)
}

func (p *parser) parseProgram() (*ast.Program, error) {
	var functions []*ast.FunctionDecl
	var interfaces []*ast.InterfaceDecl
	for {
		switch p.cur().Type {
		case lexer.EOF:
			return ast.NewProgram(functions, interfaces), nil
		case lexer.DEF:
			fn, err := p.parseFunctionDecl()
			if err != nil {
				return nil, err
			}
			functions = append(functions, fn)
		case lexer.INTERFACE:
			iface, err := p.parseInterfaceDecl()
			if err != nil {
				return nil, err
			}
			interfaces = append(interfaces, iface)
		default:
			return nil, p.errorf("expected function or interface declaration")
		}
	}
}

func (p *parser) parseFunctionDecl() (*ast.FunctionDecl, error) {
	p.advance() // def
	name, err := p.expect(lexer.IDENT, "function name")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDecl(name.Lexeme, params, body), nil
}

func (p *parser) parseInterfaceDecl() (*ast.InterfaceDecl, error) {
	p.advance() // interface
	name, err := p.expect(lexer.IDENT, "interface name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	var fields []*ast.InterfaceField
	for !p.at(lexer.RBRACE) {
		field, err := p.expect(lexer.IDENT, "interface field name")
		if err != nil {
			return nil, err
		}
		if p.at(lexer.LPAREN) {
			params, err := p.parseParams()
			if err != nil {
				return nil, err
			}
			fields = append(fields, ast.NewInterfaceMethod(field.Lexeme, params))
		} else {
			fields = append(fields, ast.NewInterfaceField(field.Lexeme))
		}
		if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
			return nil, err
		}
	}
	p.advance() // }
	return ast.NewInterfaceDecl(name.Lexeme, fields), nil
}

func (p *parser) parseParams() ([]*ast.Parameter, error) {
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var params []*ast.Parameter
	if p.accept(lexer.RPAREN) {
		return params, nil
	}
	for {
		ref := p.accept(lexer.AMP)
		name, err := p.expect(lexer.IDENT, "parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, ast.NewParameter(name.Lexeme, ref))
		if p.accept(lexer.COMMA) {
			continue
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return params, nil
	}
}

func (p *parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expect(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}
	statements := []ast.Statement{}
	for !p.at(lexer.RBRACE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	p.advance() // }
	return statements, nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	switch p.cur().Type {
	case lexer.VAR, lexer.BVAR:
		block := p.advance().Type == lexer.BVAR
		name, err := p.expect(lexer.IDENT, "variable name")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
			return nil, err
		}
		if block {
			return ast.NewBlockVarDecl(name.Lexeme), nil
		}
		return ast.NewVarDecl(name.Lexeme), nil
	case lexer.IF:
		return p.parseIf()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.RETURN:
		p.advance()
		if p.accept(lexer.SEMI) {
			return ast.NewReturn(nil), nil
		}
		value, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
			return nil, err
		}
		return ast.NewReturn(value), nil
	case lexer.IDENT:
		return p.parseAssignOrCall()
	default:
		return nil, p.errorf("expected statement")
	}
}

func (p *parser) parseIf() (ast.Statement, error) {
	p.advance() // if
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var otherwise []ast.Statement
	if p.accept(lexer.ELSE) {
		otherwise, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIf(cond, then, otherwise), nil
}

func (p *parser) parseWhile() (ast.Statement, error) {
	p.advance() // while
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhile(cond, body), nil
}

func (p *parser) parseCondition() (ast.Expression, error) {
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return cond, nil
}

func (p *parser) parseAssignOrCall() (ast.Statement, error) {
	name, err := p.parseQualifiedName()
	if err != nil {
		return nil, err
	}
	switch p.cur().Type {
	case lexer.ASSIGN:
		p.advance()
		value, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
			return nil, err
		}
		return ast.NewAssignment(name, value), nil
	case lexer.LPAREN:
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI, "';'"); err != nil {
			return nil, err
		}
		return ast.NewCall(name, args), nil
	default:
		return nil, p.errorf("expected '=' or '(' after name")
	}
}

func (p *parser) parseQualifiedName() (string, error) {
	first, err := p.expect(lexer.IDENT, "name")
	if err != nil {
		return "", err
	}
	parts := []string{first.Lexeme}
	for p.accept(lexer.DOT) {
		next, err := p.expect(lexer.IDENT, "name after '.'")
		if err != nil {
			return "", err
		}
		parts = append(parts, next.Lexeme)
	}
	return strings.Join(parts, "."), nil
}

func (p *parser) parseArgs() ([]ast.Expression, error) {
	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}
	args := []ast.Expression{}
	if p.accept(lexer.RPAREN) {
		return args, nil
	}
	for {
		arg, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.accept(lexer.COMMA) {
			continue
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return args, nil
	}
}

// Binding powers for infix operators, loosest first.
var infixPower = map[lexer.TokenType]int{
	lexer.OR:    1,
	lexer.AND:   2,
	lexer.EQ:    3,
	lexer.NEQ:   3,
	lexer.LT:    4,
	lexer.LTE:   4,
	lexer.GT:    4,
	lexer.GTE:   4,
	lexer.PLUS:  5,
	lexer.MINUS: 5,
	lexer.STAR:  6,
	lexer.SLASH: 6,
}

var infixOp = map[lexer.TokenType]string{
	lexer.OR:    "||",
	lexer.AND:   "&&",
	lexer.EQ:    "==",
	lexer.NEQ:   "!=",
	lexer.LT:    "<",
	lexer.LTE:   "<=",
	lexer.GT:    ">",
	lexer.GTE:   ">=",
	lexer.PLUS:  "+",
	lexer.MINUS: "-",
	lexer.STAR:  "*",
	lexer.SLASH: "/",
}

func (p *parser) parseExpression(minPower int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		power, ok := infixPower[p.cur().Type]
		if !ok || power <= minPower {
			return left, nil
		}
		op := infixOp[p.advance().Type]
		right, err := p.parseExpression(power)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(op, left, right)
	}
}

func (p *parser) parseUnary() (ast.Expression, error) {
	switch p.cur().Type {
	case lexer.MINUS:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr("-", operand), nil
	case lexer.BANG:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr("!", operand), nil
	}
	return p.parsePrimary()
}

// Conversion keywords are ordinary identifiers everywhere except directly
// before an argument list.
var convertTargets = map[string]string{
	"int":  "int",
	"str":  "str",
	"bool": "bool",
}

func (p *parser) parsePrimary() (ast.Expression, error) {
	switch p.cur().Type {
	case lexer.INT:
		return ast.NewIntLiteral(p.advance().Int), nil
	case lexer.STRING:
		return ast.NewStringLiteral(p.advance().Lexeme), nil
	case lexer.TRUE:
		p.advance()
		return ast.NewBoolLiteral(true), nil
	case lexer.FALSE:
		p.advance()
		return ast.NewBoolLiteral(false), nil
	case lexer.NIL:
		p.advance()
		return ast.NewNilLiteral(), nil
	case lexer.AT:
		p.advance()
		return ast.NewNewObject(), nil
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	case lexer.LAMBDA:
		return p.parseLambda()
	case lexer.IDENT:
		name, err := p.parseQualifiedName()
		if err != nil {
			return nil, err
		}
		if p.at(lexer.LPAREN) {
			if to, ok := convertTargets[name]; ok {
				args, err := p.parseArgs()
				if err != nil {
					return nil, err
				}
				if len(args) != 1 {
					return nil, p.errorf("conversion %s takes exactly one argument", name)
				}
				return ast.NewConvertExpr(to, args[0]), nil
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return ast.NewCall(name, args), nil
		}
		return ast.NewQualifiedName(name), nil
	default:
		return nil, p.errorf("expected expression")
	}
}

func (p *parser) parseLambda() (ast.Expression, error) {
	p.advance() // lambda
	name, err := p.expect(lexer.IDENT, "lambda name")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewLambdaExpr(name.Lexeme, params, body), nil
}
