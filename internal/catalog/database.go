package catalog

import "codeberg.org/antivibe/antivibe/internal/hints"

// hint tables per problem type and level. linked_list is recognized by
// the classifier but has no tables of its own yet.
var hintTables = map[ProblemType]map[hints.Level][]string{
	TwoSum: {
		hints.LevelConceptual: {
			"Think about how you can efficiently find if a number's complement exists in the array.",
			"Consider what data structure allows fast lookups.",
			"What's the time complexity of checking every pair?",
		},
		hints.LevelAlgorithm: {
			"A hash map can reduce the lookup time from O(n) to O(1).",
			"Try storing each number's index as you iterate through the array.",
			"For each number, calculate what other number you need to reach the target.",
		},
		hints.LevelImplementation: {
			"Initialize an empty dictionary. For each number, check if (target - current) exists in the dictionary.",
			"Iterate with both index and value. Return indices when the complement is found.",
			"Handle edge cases: empty array, no solution, duplicate numbers.",
		},
		hints.LevelCodeStructure: {
			"Algorithm: 1) Create hash map, 2) For each index i and value num, 3) complement = target - num, 4) If complement in map, return [map[complement], i], 5) Else map[num] = i",
			"Time: O(n), Space: O(n). Consider what happens with duplicates and why the order matters.",
		},
	},
	BinarySearch: {
		hints.LevelConceptual: {
			"This problem can be solved efficiently using divide and conquer.",
			"Think about how you can repeatedly halve the search space.",
			"What condition tells you which half to search next?",
		},
		hints.LevelAlgorithm: {
			"The array must be sorted for binary search to work.",
			"Use two pointers: left (start) and right (end) of the search space.",
			"Calculate the middle index and compare with target.",
		},
		hints.LevelImplementation: {
			"Initialize left=0, right=len(arr)-1. While left <= right, calculate mid = (left+right)/2.",
			"If arr[mid] == target: return mid. If arr[mid] < target: left = mid+1, else right = mid-1.",
			"Handle cases where target is not found and avoid integer overflow with mid calculation.",
		},
		hints.LevelCodeStructure: {
			"Template: left, right = 0, n-1; while left <= right: mid = left + (right-left)/2; if nums[mid]==target: return mid; elif nums[mid]<target: left=mid+1; else: right=mid-1; return -1",
			"Consider variations: first/last occurrence, search in rotated array, infinite array.",
		},
	},
	StringReversal: {
		hints.LevelConceptual: {
			"Think about different ways to reverse a string without built-in functions.",
			"Consider the time and space complexity of each approach.",
			"How would you handle Unicode characters or special cases?",
		},
		hints.LevelAlgorithm: {
			"You can use two pointers: one starting from beginning, one from end.",
			"A stack data structure naturally reverses order (LIFO).",
			"Recursion can also reverse strings by processing substrings.",
		},
		hints.LevelImplementation: {
			"Two-pointer: convert to a mutable list of characters, left=0, right=len-1, swap until left>=right.",
			"Stack: push all chars, then pop to build reversed string.",
			"Slicing shortcuts exist in most languages, but understand how they work internally.",
		},
		hints.LevelCodeStructure: {
			"Two-pointer: chars = list(s); l, r = 0, len(chars)-1; while l < r: swap chars[l], chars[r]; l += 1; r -= 1; return join(chars)",
			"Consider edge cases: empty string, single char, palindrome, Unicode characters.",
		},
	},
	General: {
		hints.LevelConceptual: {
			"Think about the problem step by step. What's the simplest case?",
			"Consider the time and space complexity of your approach.",
		},
		hints.LevelAlgorithm: {
			"Break the problem into smaller subproblems.",
			"What data structures might be useful here?",
		},
		hints.LevelImplementation: {
			"Start with a brute force solution and then optimize.",
			"Consider edge cases and boundary conditions.",
		},
		hints.LevelCodeStructure: {
			"Write pseudocode before implementing.",
			"Test your solution with sample inputs first.",
		},
	},
}

var questionTables = map[ProblemType][]string{
	TwoSum: {
		"What's the time complexity of the brute force approach?",
		"How does the hash map solution improve performance?",
		"What if the array has duplicate numbers?",
		"How would you handle multiple solutions?",
	},
	BinarySearch: {
		"Why must the array be sorted for binary search?",
		"What's the difference between iterative and recursive binary search?",
		"How do you avoid integer overflow when calculating mid?",
		"What are the edge cases for binary search?",
	},
	StringReversal: {
		"What's the most efficient way to reverse a string?",
		"How does string immutability affect the solution?",
		"What's the time and space complexity of each approach?",
		"How would you reverse words in a sentence?",
	},
	General: {
		"What's the time complexity of your approach?",
		"How would you handle edge cases?",
		"What's the most challenging part of this problem?",
		"How could you test your solution?",
	},
}

var resourceTables = map[ProblemType][]string{
	TwoSum: {
		"https://leetcode.com/problems/two-sum/",
		"https://www.geeksforgeeks.org/given-an-array-a-and-a-number-x-check-for-pair-in-a-with-sum-as-x/",
	},
	BinarySearch: {
		"https://leetcode.com/explore/learn/card/binary-search/",
		"https://www.geeksforgeeks.org/binary-search/",
	},
	StringReversal: {
		"https://leetcode.com/problems/reverse-string/",
		"https://www.geeksforgeeks.org/reverse-string-python-5-different-ways/",
	},
	General: {
		"https://leetcode.com/explore/learn/",
		"https://www.geeksforgeeks.org/data-structures/",
	},
}

var nextSteps = []string{
	"Try implementing this approach with sample inputs.",
	"Test your solution with edge cases.",
	"Consider how you would explain this solution to someone else.",
	"Think about alternative approaches and compare them.",
}

// order reported by ProblemTypes
var tableOrder = []ProblemType{TwoSum, BinarySearch, StringReversal, General}
