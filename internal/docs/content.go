package docs

import . "github.com/proxpl/proxsite/internal/content"

var categories = []Category{
	{
		Title:  "1. Introduction",
		Topics: []string{"About ProXPL", "Why ProXPL?", "Key Features", "Quick Start", "Installation"},
	},
	{
		Title:  "2. Language Core",
		Topics: []string{"Variables & Primitives", "Collections", "Functions", "Control Flow", "Async/Await"},
	},
	{
		Title:  "3. Modules & System",
		Topics: []string{"Module System", "Standard Library Overview"},
	},
	{
		Title:  "4. Standard Library",
		Topics: []string{"std.io", "std.fs", "std.math", "std.sys", "std.net", "std.time"},
	},
	{
		Title:  "5. Package Manager",
		Topics: []string{"PRM Overview", "PRM Commands", "Project Structure"},
	},
	{
		Title:  "6. Architecture",
		Topics: []string{"Architecture Overview", "Compilation Pipeline", "Virtual Machine", "Project File Structure"},
	},
	{
		Title:  "7. Roadmap",
		Topics: []string{"Current Status", "Upcoming Features", "Future Plans"},
	},
	{
		Title:  "8. Contributing",
		Topics: []string{"How to Contribute", "Areas for Contribution", "License"},
	},
}

var entries = []Entry{
	// 1. Introduction
	{
		Name:  "About ProXPL",
		Title: "About ProXPL",
		Body: []Node{
			P("**ProXPL** (ProX Programming Language) is a modern, statically-typed programming language designed for **clarity, performance, and reliability**."),
			P("Born from a vision to combine Python's readability with C's execution speed, ProXPL features a professional compiler architecture with a custom bytecode VM, comprehensive type system, and integrated package management."),
			P("ProXPL is implemented entirely in C/C++ with zero runtime dependencies, making it ideal for systems programming, backend services, command-line tools, and performance-critical applications."),
		},
	},
	{
		Name:  "Why ProXPL?",
		Title: "Why ProXPL?",
		Body: []Node{
			Bullets(
				"**Familiar Syntax**: Clean, expressive syntax inspired by JavaScript and Python.",
				"**True Performance**: Bytecode compilation to a stack-based VM with LLVM backend for AOT compilation.",
				"**Type Safety**: Static typing with intelligent type inference prevents entire classes of runtime errors.",
				"**Batteries Included**: 75+ built-in standard library functions covering I/O, math, strings, collections, and system operations.",
				"**Integrated Tooling**: Built-in package manager (PRM), CLI tools, and LSP support.",
				"**Professional Architecture**: Clean separation between lexer, parser, type checker, compiler, and VM.",
			),
		},
	},
	{
		Name:  "Key Features",
		Title: "Key Features",
		Body: []Node{
			P("ProXPL combines the best of modern language design:"),
			Grid(
				"**Modern Syntax**: JavaScript-like syntax with curly braces.",
				"**Fast Execution**: Custom stack-based VM & LLVM AOT.",
				"**Rich StdLib**: 75+ native functions.",
				"**Static Type System**: Compile-time checks.",
				"**PRM Package Manager**: Built-in dependency management.",
				"**Async/Await**: Native asynchronous support.",
			),
		},
	},
	{
		Name:  "Quick Start",
		Title: "Quick Start",
		Body: []Node{
			H("Your First Program"),
			P("Create a file named `hello.prox`:"),
			Snippet("", "hello.prox", `// hello.prox
// Your first ProXPL program

func main() {
    print("Welcome to ProXPL!");

    let name = input("What is your name? ");
    print("Hello, " + name + "!");

    // Generate a random lucky number
    let lucky = random(1, 100);
    print("Here is a lucky number for you: " + to_string(lucky));
}

main();`),
			H("Run It"),
			P("Using the ProXPL CLI:"),
			Snippet("bash", "", "prox run hello.prox"),
			P("Or using the compiled executable:"),
			Snippet("bash", "", "./proxpl hello.prox"),
		},
	},
	{
		Name:  "Installation",
		Title: "Installation",
		Body: []Node{
			H("Option 1: Pre-built Binaries (Recommended)"),
			P("Download the latest release for your operating system from the [Releases Page](https://github.com/ProgrammerKR/ProXPL/releases/latest)."),
			Bullets(
				"**Windows**: `proxpl.exe`",
				"**Linux**: `proxpl`",
				"**macOS**: `proxpl-macos`",
			),
			P("Add the executable to your system `PATH` for global access."),
			H("Option 2: Build from Source"),
			P("**Requirements:** C/C++ Compiler (GCC 9+, Clang 10+, or MSVC 2019+), CMake 3.15+, LLVM 10+, Git."),
			Snippet("bash", "", `# Clone the repository
git clone https://github.com/ProgrammerKR/ProXPL.git
cd ProXPL

# Create build directory
mkdir build && cd build

# Configure with CMake
cmake -DCMAKE_BUILD_TYPE=Release ..

# Build the project
make`),
		},
	},

	// 2. Language Core
	{
		Name:  "Variables & Primitives",
		Title: "Variables & Primitives",
		Body: []Node{
			P("ProXPL supports core data types with static type checking."),
			Snippet("", "", `// Primitives
let count = 42;              // Integer
let price = 19.99;           // Float
let active = true;           // Boolean
let message = "Hello!";      // String

// Type inference works automatically
let auto = 100;  // Inferred as Integer`),
		},
	},
	{
		Name:  "Collections",
		Title: "Collections",
		Body: []Node{
			P("ProXPL provides robust collection types like Lists and Dictionaries."),
			H("Lists"),
			Snippet("", "", `let numbers = [1, 2, 3, 4, 5];
let first = numbers[0];     // Access by index
push(numbers, 6);           // Add element
let size = length(numbers); // Get size`),
			H("Dictionaries"),
			Snippet("", "", `let config = {"host": "localhost", "port": 8080};
config["debug"] = true;     // Add key
let host = config["host"];  // Access value`),
		},
	},
	{
		Name:  "Functions",
		Title: "Functions",
		Body: []Node{
			P("Functions are defined using the `func` keyword."),
			Snippet("", "", `func fibonacci(n) {
    if (n <= 1) return n;
    return fibonacci(n - 1) + fibonacci(n - 2);
}

// Call the function
let result = fibonacci(10);`),
		},
	},
	{
		Name:  "Control Flow",
		Title: "Control Flow",
		Body: []Node{
			H("For Loops"),
			Snippet("", "", `for (let i = 0; i < 10; i = i + 1) {
    print("Count: " + to_string(i));
}`),
			H("While Loops"),
			Snippet("", "", `let count = 0;
while (count < 5) {
    print("Count: " + to_string(count));
    count = count + 1;
}`),
		},
	},
	{
		Name:  "Async/Await",
		Title: "Async/Await",
		Body: []Node{
			P("ProXPL supports native asynchronous programming with LLVM Coroutines support."),
			Snippet("", "", `async func fetchUser(id) {
    // Simulate non-blocking operation
    return {"id": id, "name": "User" + to_string(id)};
}

async func main() {
    print("Fetching user...");
    let user = await fetchUser(42);
    print("Got user: " + user["name"]);
}`),
		},
	},

	// 3. Modules & System
	{
		Name:  "Module System",
		Title: "Module System",
		Body: []Node{
			P("ProXPL uses the `use` keyword for modular programming. You can import standard libraries, packages, or local files."),
			Snippet("", "", `// Import standard library module
use std.math;

// Import from installed package
use http.client;

// Import local file (relative path)
use local_helper;

func main() {
    let result = std.math.sqrt(16);
    print("Result: " + to_string(result));
}`),
		},
	},
	{
		Name:  "Standard Library Overview",
		Title: "Standard Library Overview",
		Body: []Node{
			P("The standard library provides 75+ built-in functions."),
			Snippet("", "", `use std.io;
use std.fs;
use std.sys;

// File I/O
let content = read_file("data.txt");
write_file("output.txt", "Hello from ProXPL!");

// Math
let result = sqrt(144);
let power = pow(2, 8);

// System
let env_var = env("PATH");
let current_time = time();`),
		},
	},

	// 4. Standard Library
	{
		Name:  "std.io",
		Title: "std.io",
		Body: []Node{
			P("The **Input/Output** module provides core functionality for interacting with the console and standard streams."),
			Bullets(
				"`print(message)`: Output text to stdout with a newline.",
				"`input(prompt)`: Read a line of text from stdin with an optional prompt.",
				"`eprint(message)`: Output error messages to stderr.",
			),
		},
	},
	{
		Name:  "std.fs",
		Title: "std.fs",
		Body: []Node{
			P("The **File System** module enables reading from and writing to the local file system."),
			Bullets(
				"`read_file(path)`: Read the entire contents of a file as a string.",
				"`write_file(path, content)`: Write string content to a file, creating it if it doesn't exist.",
				"`append_file(path, content)`: Append content to the end of a file.",
				"`exists(path)`: Check if a file or directory exists.",
			),
		},
	},
	{
		Name:  "std.math",
		Title: "std.math",
		Body: []Node{
			P("The **Math** module includes common mathematical functions and constants."),
			Bullets(
				"`sqrt(n)`, `pow(base, exp)`, `abs(n)`",
				"`sin(x)`, `cos(x)`, `tan(x)`, `log(x)`, `log10(x)`",
				"`random(min, max)`: Generate a pseudo-random integer.",
				"`PI`, `E`: Common constants.",
			),
		},
	},
	{
		Name:  "std.sys",
		Title: "std.sys",
		Body: []Node{
			P("System-level operations for environment and process management."),
			Bullets(
				"`env(key)`: Retrieve the value of an environment variable.",
				"`exit(code)`: Terminate the program with a specific exit code.",
				"`args()`: Get command-line arguments as a list.",
				"`time()`: Get the current system timestamp.",
			),
		},
	},
	{
		Name:  "std.net",
		Title: "std.net (Experimental)",
		Body: []Node{
			P("Networking capabilities for building TCP clients and servers."),
			Bullets(
				"`socket_create()`, `socket_bind()`, `socket_listen()`",
				"`http_get(url)`: Simple HTTP GET request helper.",
			),
		},
	},
	{
		Name:  "std.time",
		Title: "std.time",
		Body: []Node{
			P("Utilities for time manipulation and performance measurement."),
			Bullets(
				"`sleep(ms)`: Pause execution for a specified number of milliseconds.",
				"`now()`: High-resolution monotonic clock for benchmarking.",
			),
		},
	},

	// 5. Package Manager
	{
		Name:  "PRM Overview",
		Title: "PRM Overview",
		Body: []Node{
			P("ProXPL includes **PRM** (ProX Repository Manager), a built-in tool for dependency management and project scaffolding."),
		},
	},
	{
		Name:  "PRM Commands",
		Title: "PRM Commands",
		Body: []Node{
			Snippet("bash", "", `# Initialize a new project
prm init my-project

# Install a package
prm install http-server

# List installed packages
prm list

# Search for packages
prm search json

# Update dependencies
prm update

# Remove a package
prm remove old-package`),
		},
	},
	{
		Name:  "Project Structure",
		Title: "Project Structure",
		Body: []Node{
			P("A project is defined by a `prox.toml` file."),
			Snippet("toml", "", `[package]
name = "my-web-server"
version = "1.0.0"
authors = ["Your Name <you@example.com>"]
edition = "2025"
description = "A fast web server built with ProXPL"
license = "MIT"

[dependencies]
http_parser = "2.1.0"
json = "1.5.0"

[build]
target = "native"
optimize = true`),
		},
	},

	// 6. Architecture
	{
		Name:  "Architecture Overview",
		Title: "Architecture Overview",
		Body: []Node{
			P("ProXPL follows a professional multi-phase compiler architecture."),
			Snippet("text", "", `Source (.prox)
  ↓
Scanner/Lexer
  ↓
Parser (AST)
  ↓
Type Checker
  ↓
IR Generator (SSA)
  ↓
SSA Optimizer
  ↓
[Compilation Mode] -> Bytecode -> Stack VM
                   -> LLVM Backend -> Native Binary`),
		},
	},
	{
		Name:  "Compilation Pipeline",
		Title: "Compilation Pipeline",
		Body: []Node{
			Steps(
				"**Lexical Analysis**: Source code is tokenized into meaningful symbols.",
				"**Syntax Analysis**: Tokens are parsed into an Abstract Syntax Tree (AST).",
				"**Semantic Analysis**: Type checking and semantic validation.",
				"**IR Generation**: AST is lowered to SSA-based intermediate representation.",
				"**Optimization**: IR optimizations (constant folding, dead code elimination).",
				"**Code Generation**: Generating Bytecode or LLVM IR.",
				"**Execution**: VM execution or Native binary execution.",
			),
		},
	},
	{
		Name:  "Virtual Machine",
		Title: "Virtual Machine",
		Body: []Node{
			P("A stack-based VM that executes optimized bytecode, featuring a Mark-and-Sweep Garbage Collector for automatic memory management."),
		},
	},
	{
		Name:  "Project File Structure",
		Title: "Project File Structure",
		Body: []Node{
			Snippet("text", "", `ProXPL/
├── include/                  # Public header files
├── src/
│   ├── main.c                # Entry point
│   ├── lexer/                # Lexical analysis
│   ├── parser/               # Syntax analysis
│   ├── compiler/             # Code generation
│   ├── runtime/              # Runtime system (VM, GC)
│   ├── stdlib/               # Standard library (native)
│   └── prm/                  # Package manager
├── lib/std/                  # Standard library (ProXPL)
└── docs/                     # Documentation`),
		},
	},

	// 7. Roadmap
	{
		Name:  "Current Status",
		Title: "Current Status (v1.0.0 - Alpha)",
		Body: []Node{
			H("Released Features"),
			Bullets(
				"**Class-based OOP**: First-class support for Classes, Objects, Inheritance, and Interfaces.",
				"**Runtime Architecture**: Enhanced VM with Class, Instance, and BoundMethod support.",
				"**New Keywords**: `class`, `new`, `this`, `extends`, `interface`, `static`.",
				"**Inheritance**: Single inheritance model with superclass method lookup.",
			),
		},
	},
	{
		Name:  "Upcoming Features",
		Title: "Upcoming Features (v1.1.0)",
		Body: []Node{
			Bullets(
				"**Access Control**: `pub`/`priv` visibility enforcement.",
				"**Constructors**: `init` constructor method.",
				"**Exception Handling**: `try`/`catch` blocks.",
				"**Module System Refinements**: Enhanced import resolution and cyclic dependency handling.",
			),
		},
	},
	{
		Name:  "Future Plans",
		Title: "Future Plans (2026+)",
		Body: []Node{
			Bullets(
				"**v1.2.0**: FFI Stability & ProX Studio Alpha.",
				"**v1.3.0**: Pattern Matching, Enums, Generics.",
				"**v2.0.0**: Async/Await overhaul, WebAssembly target, JIT compilation.",
			),
		},
	},

	// 8. Contributing
	{
		Name:  "How to Contribute",
		Title: "How to Contribute",
		Body: []Node{
			Steps(
				"**Fork** the repository.",
				"Create a feature branch (`git checkout -b feature/amazing-feature`).",
				"Follow the Coding Standards.",
				"Write tests for new features.",
				"Commit your changes.",
				"Push to the branch.",
				"Open a **Pull Request**.",
			),
		},
	},
	{
		Name:  "Areas for Contribution",
		Title: "Areas for Contribution",
		Body: []Node{
			Bullets(
				"Bug fixes and stability improvements",
				"New standard library functions",
				"Documentation and tutorials",
				"Performance optimizations",
				"Community packages",
			),
		},
	},
	{
		Name:  "License",
		Title: "License",
		Body: []Node{
			P("This project is licensed under the ProXPL Professional License - MIT."),
		},
	},
}
