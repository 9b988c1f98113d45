package service

// DefaultSyllabusContent 大纲 PDF 与缓存都不可用时使用
const DefaultSyllabusContent = `PRIMARY MATHEMATICS SYLLABUS (P1 to P6)

PRIMARY 5 (Ages 10-11) MATHEMATICS STANDARDS:

NUMBER AND ALGEBRA:
- Whole numbers up to 1,000,000
- Four operations with whole numbers and decimals
- Fractions: equivalent fractions, comparing and ordering
- Decimals: place value, comparing and ordering
- Percentage: basic concepts and calculations

MEASUREMENT AND GEOMETRY:
- Length, mass, volume, time, money
- Area and perimeter of rectangles and squares
- Volume of cubes and cuboids
- Angles: types and measurement
- 2D and 3D shapes

STATISTICS:
- Data collection and representation
- Simple graphs and charts
- Mean, mode, median (basic concepts)

PROBLEM SOLVING:
- Multi-step word problems
- Real-world applications
- Logical reasoning and mathematical thinking

QUESTION FORMAT STANDARDS:
- Clear, age-appropriate language
- Real-world contexts relevant to children
- Progressive difficulty levels
- Multiple solution methods encouraged
- Emphasis on understanding over memorization
`
