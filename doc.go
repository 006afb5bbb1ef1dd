// Package balancete provides the model and the logic behind a local-first
// balance-sheet dashboard.
//
// The core functionalities include:
//   - Sheet Import: reading a spreadsheet (xlsx, xls, csv) whose first row is
//     a header, and mapping columns 0-2 to assets and columns 4-6 to
//     liabilities.
//   - Classification: flagging total rows and group header rows from their
//     description.
//   - Analysis: summary totals, horizontal (AH%) and vertical (AV%) analysis,
//     all recomputed from the current data on every access.
//   - Persistence: saving and loading the whole dashboard as a single JSON
//     blob under one fixed key in any key-value backend.
//   - Orchestration: the Dashboard type owns the current state and serializes
//     uploads, resets and insight requests.
//
// Monetary values follow the Brazilian convention ("R$ 1.234,56"), for both
// parsing and display.
package balancete
