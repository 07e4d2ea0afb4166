package lookahead

import "github.com/ckeaney/kcc/pkg/token"

// Atomic tables: one per terminal shape the C grammar's FIRST sets
// are built from.
var (
	firstOfChar     = SingleForm(token.Keyword, token.Char)
	firstOfShort    = SingleForm(token.Keyword, token.Short)
	firstOfInt      = SingleForm(token.Keyword, token.Int)
	firstOfLong     = SingleForm(token.Keyword, token.Long)
	firstOfFloat    = SingleForm(token.Keyword, token.Float)
	firstOfDouble   = SingleForm(token.Keyword, token.Double)
	firstOfSigned   = SingleForm(token.Keyword, token.Signed)
	firstOfUnsigned = SingleForm(token.Keyword, token.Unsigned)
	firstOfBool     = SingleForm(token.Keyword, token.Bool)
	firstOfComplex  = SingleForm(token.Keyword, token.Complex)
	firstOfVoid     = SingleForm(token.Keyword, token.Void)

	firstOfTypedef  = SingleForm(token.Keyword, token.Typedef)
	firstOfExtern   = SingleForm(token.Keyword, token.Extern)
	firstOfStatic   = SingleForm(token.Keyword, token.Static)
	firstOfAuto     = SingleForm(token.Keyword, token.Auto)
	firstOfRegister = SingleForm(token.Keyword, token.Register)

	firstOfConst    = SingleForm(token.Keyword, token.Const)
	firstOfRestrict = SingleForm(token.Keyword, token.Restrict)
	firstOfVolatile = SingleForm(token.Keyword, token.Volatile)
	firstOfInline   = SingleForm(token.Keyword, token.Inline)

	firstOfStruct = SingleForm(token.Keyword, token.Struct)
	firstOfUnion  = SingleForm(token.Keyword, token.Union)
	firstOfEnum   = SingleForm(token.Keyword, token.Enum)

	firstOfSizeof   = SingleForm(token.Keyword, token.Sizeof)
	firstOfCase     = SingleForm(token.Keyword, token.Case)
	firstOfDefault  = SingleForm(token.Keyword, token.Default)
	firstOfGoto     = SingleForm(token.Keyword, token.Goto)
	firstOfContinue = SingleForm(token.Keyword, token.Continue)
	firstOfBreak    = SingleForm(token.Keyword, token.Break)
	firstOfReturn   = SingleForm(token.Keyword, token.Return)
	firstOfWhile    = SingleForm(token.Keyword, token.While)
	firstOfDo       = SingleForm(token.Keyword, token.Do)
	firstOfFor      = SingleForm(token.Keyword, token.For)
	firstOfIf       = SingleForm(token.Keyword, token.If)
	firstOfSwitch   = SingleForm(token.Keyword, token.Switch)

	firstOfIdentifier          = Single(token.Identifier)
	firstOfConstant            = Single(token.Constant)
	firstOfStringLiteral       = Single(token.StringLiteral)
	firstOfEnumerationConstant = SingleForm(token.Constant, token.EnumerationConstant)

	firstOfOpenParen        = SingleForm(token.Punctuator, token.OpenParen)
	firstOfOpenBracket      = SingleForm(token.Punctuator, token.OpenBracket)
	firstOfOpenCurlyBracket = SingleForm(token.Punctuator, token.OpenCurlyBracket)
	firstOfDot              = SingleForm(token.Punctuator, token.Dot)
	firstOfIncrement        = SingleForm(token.Punctuator, token.Increment)
	firstOfDecrement        = SingleForm(token.Punctuator, token.Decrement)
	firstOfTilde            = SingleForm(token.Punctuator, token.Tilde)
	firstOfAmpersand        = SingleForm(token.Punctuator, token.Ampersand)
	firstOfAsterix          = SingleForm(token.Punctuator, token.Asterix)
	firstOfPlus             = SingleForm(token.Punctuator, token.Plus)
	firstOfMinus            = SingleForm(token.Punctuator, token.Minus)
	firstOfExclamationMark  = SingleForm(token.Punctuator, token.ExclamationMark)
	firstOfSemicolon        = SingleForm(token.Punctuator, token.SemiColon)

	firstOfAssign           = SingleForm(token.Punctuator, token.Assign)
	firstOfMultiplyEqual    = SingleForm(token.Punctuator, token.MultiplyEqual)
	firstOfDivideEquals     = SingleForm(token.Punctuator, token.DivideEquals)
	firstOfModuloEquals     = SingleForm(token.Punctuator, token.ModuloEquals)
	firstOfPlusEquals       = SingleForm(token.Punctuator, token.PlusEquals)
	firstOfMinusEquals      = SingleForm(token.Punctuator, token.MinusEquals)
	firstOfLeftShiftEquals  = SingleForm(token.Punctuator, token.LeftShiftEquals)
	firstOfRightShiftEquals = SingleForm(token.Punctuator, token.RightShiftEquals)
	firstOfAmpersandEquals  = SingleForm(token.Punctuator, token.AmpersandEqual)
	firstOfXorEquals        = SingleForm(token.Punctuator, token.XorEqual)
	firstOfOrEquals         = SingleForm(token.Punctuator, token.OrEqual)
)

// Expressions. The FIRST sets chain upward through the precedence
// ladder exactly as the grammar does.
var (
	FirstOfPrimaryExpression = Union(
		firstOfIdentifier,
		firstOfConstant,
		firstOfStringLiteral,
		firstOfOpenParen,
	)

	FirstOfPostfixExpression = Union(
		FirstOfPrimaryExpression,
		firstOfOpenParen,
	)

	FirstOfUnaryOperator = Union(
		firstOfAmpersand,
		firstOfAsterix,
		firstOfPlus,
		firstOfMinus,
		firstOfTilde,
		firstOfExclamationMark,
	)

	FirstOfUnaryExpression = Union(
		FirstOfPostfixExpression,
		firstOfIncrement,
		firstOfDecrement,
		FirstOfUnaryOperator,
		firstOfSizeof,
	)

	FirstOfCastExpression = Union(
		FirstOfUnaryExpression,
		firstOfOpenParen,
	)

	FirstOfMultiplicativeExpression = Union(FirstOfCastExpression)
	FirstOfAdditiveExpression       = Union(FirstOfMultiplicativeExpression)
	FirstOfShiftExpression          = Union(FirstOfAdditiveExpression)
	FirstOfRelationalExpression     = Union(FirstOfShiftExpression)
	FirstOfEqualityExpression       = Union(FirstOfRelationalExpression)
	FirstOfAndExpression            = Union(FirstOfEqualityExpression)
	FirstOfExclusiveOrExpression    = Union(FirstOfAndExpression)
	FirstOfInclusiveOrExpression    = Union(FirstOfExclusiveOrExpression)
	FirstOfLogicalAndExpression     = Union(FirstOfInclusiveOrExpression)
	FirstOfLogicalOrExpression      = Union(FirstOfLogicalAndExpression)
	FirstOfConditionalExpression    = Union(FirstOfLogicalOrExpression)

	FirstOfAssignmentExpression = Union(
		FirstOfConditionalExpression,
		FirstOfUnaryExpression,
	)

	FirstOfArgumentExpressionList = Union(FirstOfAssignmentExpression)

	FirstOfAssignmentOperator = Union(
		firstOfAssign,
		firstOfMultiplyEqual,
		firstOfDivideEquals,
		firstOfModuloEquals,
		firstOfPlusEquals,
		firstOfMinusEquals,
		firstOfLeftShiftEquals,
		firstOfRightShiftEquals,
		firstOfAmpersandEquals,
		firstOfXorEquals,
		firstOfOrEquals,
	)

	FirstOfConstantExpression = Union(FirstOfConditionalExpression)
	FirstOfExpression         = Union(FirstOfAssignmentExpression)
)

// Declarations.
var (
	FirstOfDirectDeclarator = Union(
		firstOfOpenParen,
		firstOfIdentifier,
	)

	FirstOfPointer    = Union(firstOfAsterix)
	FirstOfDeclarator = Union(
		FirstOfPointer,
		FirstOfDirectDeclarator,
	)

	FirstOfInitDeclarator     = Union(FirstOfDeclarator)
	FirstOfInitDeclaratorList = Union(FirstOfInitDeclarator)

	FirstOfStorageClassSpecifier = Union(
		firstOfTypedef,
		firstOfExtern,
		firstOfStatic,
		firstOfAuto,
		firstOfRegister,
	)

	FirstOfStructOrUnion          = Union(firstOfStruct, firstOfUnion)
	FirstOfStructOrUnionSpecifier = Union(FirstOfStructOrUnion)
	FirstOfEnumSpecifier          = Union(firstOfEnum)
	FirstOfTypedefName            = Union(firstOfIdentifier)

	FirstOfTypeSpecifier = Union(
		firstOfVoid,
		firstOfChar,
		firstOfShort,
		firstOfInt,
		firstOfLong,
		firstOfFloat,
		firstOfDouble,
		firstOfSigned,
		firstOfUnsigned,
		firstOfBool,
		firstOfComplex,
		FirstOfStructOrUnionSpecifier,
		FirstOfEnumSpecifier,
		FirstOfTypedefName,
	)

	FirstOfTypeQualifier = Union(
		firstOfConst,
		firstOfRestrict,
		firstOfVolatile,
	)

	FirstOfSpecifierQualifierList = Union(
		FirstOfTypeSpecifier,
		FirstOfTypeQualifier,
	)

	FirstOfStructDeclaration     = Union(FirstOfSpecifierQualifierList)
	FirstOfStructDeclarationList = Union(FirstOfStructDeclaration)
	FirstOfFunctionSpecifier     = Union(firstOfInline)

	FirstOfDeclarationSpecifiers = Union(
		FirstOfStorageClassSpecifier,
		FirstOfTypeSpecifier,
		FirstOfTypeQualifier,
		FirstOfFunctionSpecifier,
	)

	FirstOfDeclaration = Union(FirstOfDeclarationSpecifiers)

	FirstOfStructDeclarator     = Union(FirstOfDeclarator)
	FirstOfStructDeclaratorList = Union(FirstOfStructDeclarator)

	FirstOfEnumerator     = Union(firstOfEnumerationConstant)
	FirstOfEnumeratorList = Union(FirstOfEnumerator)

	FirstOfTypeQualifierList = Union(FirstOfTypeQualifier)

	FirstOfParameterDeclaration = Union(FirstOfDeclarationSpecifiers)
	FirstOfParameterList        = Union(FirstOfParameterDeclaration)
	FirstOfParameterTypeList    = Union(FirstOfParameterList)

	FirstOfIdentifierList = Union(firstOfIdentifier)
	FirstOfTypeName       = Union(FirstOfSpecifierQualifierList)

	FirstOfDirectAbstractDeclarator = Union(
		firstOfOpenParen,
		firstOfOpenBracket,
	)

	FirstOfAbstractDeclarator = Union(
		FirstOfPointer,
		FirstOfDirectAbstractDeclarator,
	)

	FirstOfInitializer = Union(
		FirstOfAssignmentExpression,
		firstOfOpenCurlyBracket,
	)

	FirstOfDesignator = Union(
		firstOfOpenBracket,
		firstOfDot,
	)

	FirstOfDesignatorList = Union(FirstOfDesignator)
	FirstOfDesignation    = Union(FirstOfDesignatorList)

	FirstOfInitializerList = Union(
		FirstOfDesignation,
		FirstOfInitializer,
	)
)

// Statements and top level.
var (
	FirstOfJumpStatement = Union(
		firstOfGoto,
		firstOfContinue,
		firstOfBreak,
		firstOfReturn,
	)

	FirstOfIterationStatement = Union(
		firstOfWhile,
		firstOfDo,
		firstOfFor,
	)

	FirstOfSelectionStatement = Union(
		firstOfIf,
		firstOfSwitch,
	)

	FirstOfExpressionStatement = Union(
		FirstOfExpression,
		firstOfSemicolon,
	)

	FirstOfCompoundStatement = Union(firstOfOpenCurlyBracket)

	FirstOfLabeledStatement = Union(
		firstOfIdentifier,
		firstOfCase,
		firstOfDefault,
	)

	FirstOfStatement = Union(
		FirstOfLabeledStatement,
		FirstOfCompoundStatement,
		FirstOfExpressionStatement,
		FirstOfSelectionStatement,
		FirstOfIterationStatement,
		FirstOfJumpStatement,
	)

	FirstOfBlockItem     = Union(FirstOfDeclaration, FirstOfStatement)
	FirstOfBlockItemList = Union(FirstOfBlockItem)

	FirstOfFunctionDefinition  = Union(FirstOfDeclarationSpecifiers)
	FirstOfExternalDeclaration = Union(
		FirstOfFunctionDefinition,
		FirstOfDeclaration,
	)
	FirstOfTranslationUnit = Union(FirstOfExternalDeclaration)
	FirstOfDeclarationList = Union(FirstOfDeclaration)
)
